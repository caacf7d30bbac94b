package pagination_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bstoolkit/pkg/pagination"
)

type stubPager struct {
	number int
	count  int
}

func (s stubPager) PageNumber() int { return s.number }
func (s stubPager) PageCount() int  { return s.count }

func TestNewContext_Map(t *testing.T) {
	ctx, err := pagination.NewContext(stubPager{number: 3, count: 9},
		pagination.WithPagesToShow(5),
		pagination.WithURL("/items?sort=name&page=3"),
		pagination.WithExtra("q=lamp"),
	)
	if err != nil {
		t.Fatalf("new context: %v", err)
	}

	want := map[string]any{
		"bootstrap_pagination_url": "/items?sort=name&q=lamp&",
		"num_pages":                9,
		"current_page":             3,
		"first_page":               2,
		"last_page":                6,
		"pages_shown":              []int{2, 3, 4, 5, 6},
		"pages_back":               1,
		"pages_forward":            7,
	}
	if diff := cmp.Diff(want, ctx.Map()); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
}

func TestNewContext_DefaultsAndAbsentValues(t *testing.T) {
	ctx, err := pagination.NewContext(stubPager{number: 1, count: 1})
	if err != nil {
		t.Fatalf("new context: %v", err)
	}

	got := ctx.Map()
	for _, key := range []string{"bootstrap_pagination_url", "pages_back", "pages_forward"} {
		if got[key] != nil {
			t.Fatalf("expected %s to be nil, got %v", key, got[key])
		}
	}
	if diff := cmp.Diff([]int{1}, got["pages_shown"]); diff != "" {
		t.Fatalf("pages shown mismatch (-want +got):\n%s", diff)
	}
}

func TestNewContext_Errors(t *testing.T) {
	if _, err := pagination.NewContext(nil); !errors.Is(err, pagination.ErrInvalidArgument) {
		t.Fatalf("nil pager: expected ErrInvalidArgument, got %v", err)
	}
	_, err := pagination.NewContext(stubPager{number: 1, count: 3}, pagination.WithPagesToShow(0))
	if !errors.Is(err, pagination.ErrInvalidArgument) {
		t.Fatalf("zero pages: expected ErrInvalidArgument, got %v", err)
	}
}

func TestParsePagesToShow(t *testing.T) {
	cases := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: nil, want: pagination.DefaultPagesToShow},
		{in: 7, want: 7},
		{in: int64(9), want: 9},
		{in: 5.9, want: 5},
		{in: " 13 ", want: 13},
		{in: "-2", want: -2},
		{in: "many", wantErr: true},
		{in: []int{1}, wantErr: true},
	}

	for _, tc := range cases {
		got, err := pagination.ParsePagesToShow(tc.in)
		if tc.wantErr {
			if !errors.Is(err, pagination.ErrInvalidArgument) {
				t.Fatalf("parse %v: expected ErrInvalidArgument, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %v: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %v: want %d, got %d", tc.in, tc.want, got)
		}
	}
}
