package pagination

import "testing"

func TestDefaults(t *testing.T) {
	t.Run("fills_zero_values", func(t *testing.T) {
		p := PageRequest{}
		p.Defaults()
		if p.Page != 1 {
			t.Errorf("expected default page 1, got %d", p.Page)
		}
		if p.Limit != 10 {
			t.Errorf("expected default limit 10, got %d", p.Limit)
		}
	})

	t.Run("keeps_explicit_values", func(t *testing.T) {
		p := PageRequest{Page: 3, Limit: 25}
		p.Defaults()
		if p.Page != 3 || p.Limit != 25 {
			t.Errorf("expected page=3 limit=25, got page=%d limit=%d", p.Page, p.Limit)
		}
	})
}

func TestOffset(t *testing.T) {
	cases := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}
	for _, c := range cases {
		p := PageRequest{Page: c.page, Limit: c.limit}
		if got := p.Offset(); got != c.want {
			t.Errorf("offset for page=%d limit=%d: expected %d, got %d", c.page, c.limit, c.want, got)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds_pages_up", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2, 3}, 1, 10, 15)
		if resp.TotalPages != 2 {
			t.Errorf("expected 2 total pages for 15 items at limit 10, got %d", resp.TotalPages)
		}
		if resp.TotalItems != 15 {
			t.Errorf("expected 15 total items, got %d", resp.TotalItems)
		}
	})

	t.Run("exact_division", func(t *testing.T) {
		resp := NewPageResponse([]int{}, 1, 10, 20)
		if resp.TotalPages != 2 {
			t.Errorf("expected 2 total pages for 20 items at limit 10, got %d", resp.TotalPages)
		}
	})

	t.Run("nil_data_becomes_empty_slice", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 10, 0)
		if resp.Data == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(resp.Data) != 0 {
			t.Errorf("expected no items, got %d", len(resp.Data))
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 total pages, got %d", resp.TotalPages)
		}
	})
}
