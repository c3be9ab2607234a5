package store

import "sort"

// NameCount is one bucket of a count-by-key aggregation, used by the
// dashboard charts.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes a numeric column.
type Stats struct {
	Sum float64 `json:"sum"`
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (s *Store) ActiveEmployees() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Employee
	for _, emp := range s.state.Employees {
		if emp.Status == EmployeeActive {
			out = append(out, emp)
		}
	}
	return out
}

// EmployeeDepartments returns the distinct departments in use, sorted.
func (s *Store) EmployeeDepartments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, emp := range s.state.Employees {
		if emp.Department == "" || seen[emp.Department] {
			continue
		}
		seen[emp.Department] = true
		out = append(out, emp.Department)
	}
	sort.Strings(out)
	return out
}

func (s *Store) HeadcountByDepartment() []NameCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.state.Employees))
	for i, emp := range s.state.Employees {
		keys[i] = emp.Department
	}
	return countBy(keys)
}

func (s *Store) CandidatesByStage() []NameCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.state.Candidates))
	for i, can := range s.state.Candidates {
		keys[i] = can.Stage
	}
	return countBy(keys)
}

func (s *Store) AssetsByStatus() []NameCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.state.Assets))
	for i, asset := range s.state.Assets {
		keys[i] = asset.Status
	}
	return countBy(keys)
}

func (s *Store) ExpenseStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]float64, len(s.state.Expenses))
	for i, exp := range s.state.Expenses {
		values[i] = exp.Amount
	}
	return calcStats(values)
}

func (s *Store) AssetValueStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]float64, len(s.state.Assets))
	for i, asset := range s.state.Assets {
		values[i] = asset.Value
	}
	return calcStats(values)
}

func (s *Store) PendingLeaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, req := range s.state.LeaveRequests {
		if req.Status == StatusPending {
			count++
		}
	}
	return count
}

func (s *Store) PendingExpenseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, exp := range s.state.Expenses {
		if exp.Status == StatusPending {
			count++
		}
	}
	return count
}

func countBy(keys []string) []NameCount {
	buckets := map[string]int{}
	var order []string
	for _, key := range keys {
		if key == "" {
			key = "Other"
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key]++
	}
	out := make([]NameCount, len(order))
	for i, key := range order {
		out[i] = NameCount{Name: key, Count: buckets[key]}
	}
	return out
}

func calcStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	stats := Stats{Min: values[0], Max: values[0]}
	for _, v := range values {
		stats.Sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Avg = stats.Sum / float64(len(values))
	return stats
}
