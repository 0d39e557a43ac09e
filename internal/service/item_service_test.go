package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nwatkins/wishlist/internal/blob/local"
)

func newItemService(t *testing.T) *ItemService {
	t.Helper()

	blobs, err := local.New(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}
	return NewItemService(newTestStore(t), blobs, testLogger())
}

func TestAddItem(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	t.Run("item lands only on the owner's list", func(t *testing.T) {
		item, err := svc.AddItem(ctx, "a@example.com", "Bike", 199.99, true, "", nil)
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if item.UserEmail != "a@example.com" {
			t.Errorf("owner = %q, want a@example.com", item.UserEmail)
		}

		own, err := svc.ListOwnItems(ctx, "a@example.com")
		if err != nil {
			t.Fatalf("ListOwnItems failed: %v", err)
		}
		if len(own) != 1 || own[0].Name != "Bike" || own[0].Price != 199.99 || !own[0].Priority {
			t.Errorf("unexpected own list: %+v", own)
		}

		other, err := svc.ListOwnItems(ctx, "b@example.com")
		if err != nil {
			t.Fatalf("ListOwnItems failed: %v", err)
		}
		if len(other) != 0 {
			t.Errorf("item leaked into another user's list: %+v", other)
		}
	})

	t.Run("missing fields skip the call", func(t *testing.T) {
		cases := []struct {
			name  string
			owner string
			item  string
			price float64
		}{
			{"no identity", "", "Bike", 10},
			{"empty name", "a@example.com", "", 10},
			{"zero price", "a@example.com", "Bike", 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := svc.AddItem(ctx, tc.owner, tc.item, tc.price, false, "", nil); !errors.Is(err, ErrValidationSkipped) {
					t.Errorf("expected ErrValidationSkipped, got %v", err)
				}
			})
		}

		// Skipped calls leave the list untouched.
		own, err := svc.ListOwnItems(ctx, "a@example.com")
		if err != nil {
			t.Fatalf("ListOwnItems failed: %v", err)
		}
		if len(own) != 1 {
			t.Errorf("skipped submissions changed the list: %d items", len(own))
		}
	})

	t.Run("photo upload stores a public URL", func(t *testing.T) {
		photo := &Photo{Name: "bike.jpg", Data: []byte("jpeg-bytes")}
		item, err := svc.AddItem(ctx, "a@example.com", "Helmet", 49.90, false, "https://example.com/helmet", photo)
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if !strings.Contains(item.ImageURL, "/itemPhotos/") {
			t.Errorf("ImageURL = %q, want an itemPhotos URL", item.ImageURL)
		}
		if item.Link != "https://example.com/helmet" {
			t.Errorf("Link = %q", item.Link)
		}
	})
}

func TestItemMutations(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "owner@example.com", "Lamp", 25, false, "", nil)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	t.Run("non-owner cannot update or delete", func(t *testing.T) {
		if err := svc.UpdateItemPrice(ctx, "intruder@example.com", item.ID, 1); !errors.Is(err, ErrNotOwner) {
			t.Errorf("UpdateItemPrice: expected ErrNotOwner, got %v", err)
		}
		if err := svc.DeleteItem(ctx, "intruder@example.com", item.ID); !errors.Is(err, ErrNotOwner) {
			t.Errorf("DeleteItem: expected ErrNotOwner, got %v", err)
		}

		items, _ := svc.ListOwnItems(ctx, "owner@example.com")
		if len(items) != 1 || items[0].Price != 25 {
			t.Errorf("item modified despite denial: %+v", items)
		}
	})

	t.Run("owner updates price", func(t *testing.T) {
		if err := svc.UpdateItemPrice(ctx, "owner@example.com", item.ID, 19.99); err != nil {
			t.Fatalf("UpdateItemPrice failed: %v", err)
		}
		items, _ := svc.ListOwnItems(ctx, "owner@example.com")
		if items[0].Price != 19.99 {
			t.Errorf("Price = %v, want 19.99", items[0].Price)
		}
	})

	t.Run("owner deletes item", func(t *testing.T) {
		if err := svc.DeleteItem(ctx, "owner@example.com", item.ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		items, _ := svc.ListOwnItems(ctx, "owner@example.com")
		if len(items) != 0 {
			t.Errorf("expected empty list, got %+v", items)
		}
	})
}
