package store

import (
	"errors"
	"testing"
)

func TestAddAssetDefaultsAvailable(t *testing.T) {
	s := newTestStore(t)
	id := s.AddAsset(Asset{Name: "MacBook Pro", Type: "Laptop", SerialNumber: "C02XXXX"})

	asset, _ := s.AssetByID(id)
	if asset.Status != AssetAvailable {
		t.Fatalf("status: got %s, want %s", asset.Status, AssetAvailable)
	}
}

func TestAssignAndReturnAsset(t *testing.T) {
	s := newTestStore(t)
	empID := s.AddEmployee(Employee{Name: "John Smith"})
	assetID := s.AddAsset(Asset{Name: "MacBook Pro", Type: "Laptop", SerialNumber: "C02XXXX"})

	if err := s.AssignAsset(assetID, empID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	asset, _ := s.AssetByID(assetID)
	if asset.Status != AssetAssigned || asset.AssignedTo != empID || asset.AssignedName != "John Smith" {
		t.Fatalf("after assign: %+v", asset)
	}

	if err := s.ReturnAsset(assetID); err != nil {
		t.Fatalf("return: %v", err)
	}
	asset, _ = s.AssetByID(assetID)
	if asset.Status != AssetAvailable || asset.AssignedTo != "" || asset.AssignedName != "" {
		t.Fatalf("after return: %+v", asset)
	}
}

func TestAssignAssetUnknownEmployee(t *testing.T) {
	s := newTestStore(t)
	assetID := s.AddAsset(Asset{Name: "Monitor", Type: "Monitor", SerialNumber: "MON-1"})

	if err := s.AssignAsset(assetID, "EMP-9999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if asset, _ := s.AssetByID(assetID); asset.Status != AssetAvailable {
		t.Fatalf("failed assign mutated the asset: %+v", asset)
	}
}
