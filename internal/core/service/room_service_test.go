package service

import (
	"context"
	"testing"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

func TestRoomService_ImportCatalog(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := NewRoomService(rooms, testLogger())
	ctx := context.Background()

	result, err := svc.ImportCatalog(ctx, []ports.CatalogEntry{
		{Number: "101", Floor: 1, Category: domain.CategorySingleStandard},
		{Number: "102", Floor: 1, Category: domain.CategorySuite},
		{Number: "201", Floor: 2, Category: "penthouse"},
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 3 || result.Skipped != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	r101, err := rooms.FindByNumber(ctx, "101")
	if err != nil {
		t.Fatalf("find 101: %v", err)
	}
	if r101.PricePerNight != 1000 || r101.Status != domain.RoomAvailable {
		t.Fatalf("unexpected room 101: %+v", r101)
	}
	r102, _ := rooms.FindByNumber(ctx, "102")
	if r102.PricePerNight != 3000 {
		t.Fatalf("suite price: got %v", r102.PricePerNight)
	}
	r201, _ := rooms.FindByNumber(ctx, "201")
	if r201.PricePerNight != domain.DefaultNightlyPrice {
		t.Fatalf("unknown category must get the default price, got %v", r201.PricePerNight)
	}
}

func TestRoomService_ImportCatalog_Idempotent(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := NewRoomService(rooms, testLogger())
	ctx := context.Background()

	entries := []ports.CatalogEntry{
		{Number: "101", Floor: 1, Category: domain.CategorySingleStandard},
		{Number: "102", Floor: 1, Category: domain.CategoryBusiness},
	}
	if _, err := svc.ImportCatalog(ctx, entries); err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	entries = append(entries, ports.CatalogEntry{Number: "103", Floor: 1, Category: domain.CategoryStudio})
	result, err := svc.ImportCatalog(ctx, entries)
	if err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 2 {
		t.Fatalf("expected 1 imported / 2 skipped, got %+v", result)
	}
}

func TestRoomService_ListRooms_FilterByStatus(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := NewRoomService(rooms, testLogger())
	ctx := context.Background()

	for _, r := range []*domain.Room{
		{Number: "101", Status: domain.RoomAvailable},
		{Number: "102", Status: domain.RoomDirty},
		{Number: "103", Status: domain.RoomDirty},
	} {
		if _, err := rooms.Create(ctx, r); err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}

	dirty, err := svc.ListRooms(ctx, domain.RoomDirty)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(dirty) != 2 {
		t.Fatalf("expected 2 dirty rooms, got %d", len(dirty))
	}
	all, err := svc.ListRooms(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(all))
	}
}
