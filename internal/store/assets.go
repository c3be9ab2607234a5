package store

type AssetPatch struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	SerialNumber *string  `json:"serialNumber"`
	Status       *string  `json:"status"`
	PurchaseDate *string  `json:"purchaseDate"`
	Value        *float64 `json:"value"`
}

func (s *Store) Assets() []Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Asset(nil), s.state.Assets...)
}

func (s *Store) AssetByID(id string) (Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, asset := range s.state.Assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}

func (s *Store) AddAsset(asset Asset) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	asset.ID = s.nextIDLocked(prefixAsset)
	if asset.Status == "" {
		asset.Status = AssetAvailable
	}
	s.state.Assets = append(s.state.Assets, asset)
	s.pushToastLocked("Asset added successfully", ToastSuccess)
	s.persistLocked()
	return asset.ID
}

func (s *Store) UpdateAsset(id string, patch AssetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Assets {
		if s.state.Assets[i].ID == id {
			asset := &s.state.Assets[i]
			if patch.Name != nil {
				asset.Name = *patch.Name
			}
			if patch.Type != nil {
				asset.Type = *patch.Type
			}
			if patch.SerialNumber != nil {
				asset.SerialNumber = *patch.SerialNumber
			}
			if patch.Status != nil {
				asset.Status = *patch.Status
			}
			if patch.PurchaseDate != nil {
				asset.PurchaseDate = *patch.PurchaseDate
			}
			if patch.Value != nil {
				asset.Value = *patch.Value
			}
			s.pushToastLocked("Asset updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// AssignAsset hands an asset to an employee, snapshotting the employee's
// current name next to the id.
func (s *Store) AssignAsset(assetID, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.employeeNameLocked(employeeID)
	if name == "" {
		return ErrNotFound
	}
	for i := range s.state.Assets {
		if s.state.Assets[i].ID == assetID {
			asset := &s.state.Assets[i]
			asset.AssignedTo = employeeID
			asset.AssignedName = name
			asset.Status = AssetAssigned
			s.pushToastLocked("Asset assigned successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ReturnAsset(assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Assets {
		if s.state.Assets[i].ID == assetID {
			asset := &s.state.Assets[i]
			asset.AssignedTo = ""
			asset.AssignedName = ""
			asset.Status = AssetAvailable
			s.pushToastLocked("Asset returned successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Assets {
		if s.state.Assets[i].ID == id {
			s.state.Assets = append(s.state.Assets[:i], s.state.Assets[i+1:]...)
			s.pushToastLocked("Asset deleted successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
