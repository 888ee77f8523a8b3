package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		page     int
		pageSize int
	}{
		{"zero_values", PageRequest{}, 1, DefaultPageSize},
		{"kept", PageRequest{Page: 3, PageSize: 10}, 3, 10},
		{"capped", PageRequest{Page: 1, PageSize: 500}, 1, MaxPageSize},
		{"negative", PageRequest{Page: -2, PageSize: -1}, 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Defaults()
			if req.Page != tt.page || req.PageSize != tt.pageSize {
				t.Errorf("expected page %d size %d, got page %d size %d", tt.page, tt.pageSize, req.Page, req.PageSize)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("first_page", func(t *testing.T) {
		res := Slice(items, PageRequest{Page: 1, PageSize: 2})
		if len(res.Data) != 2 || res.Data[0] != 1 || res.Data[1] != 2 {
			t.Errorf("unexpected data %v", res.Data)
		}
		if res.TotalItems != 5 || res.TotalPages != 3 {
			t.Errorf("expected 5 items over 3 pages, got %d over %d", res.TotalItems, res.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		res := Slice(items, PageRequest{Page: 3, PageSize: 2})
		if len(res.Data) != 1 || res.Data[0] != 5 {
			t.Errorf("unexpected data %v", res.Data)
		}
	})

	t.Run("past_the_end", func(t *testing.T) {
		res := Slice(items, PageRequest{Page: 9, PageSize: 2})
		if res.Data == nil || len(res.Data) != 0 {
			t.Errorf("expected empty non-nil page, got %v", res.Data)
		}
	})

	t.Run("copy_is_independent", func(t *testing.T) {
		res := Slice(items, PageRequest{Page: 1, PageSize: 5})
		res.Data[0] = 99
		if items[0] != 1 {
			t.Error("page data should not alias the source slice")
		}
	})
}
