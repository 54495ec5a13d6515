package repository

import (
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"obralink/internal/domain/entities"
)

// Seed datasets served when a collection has never been written or the
// store cannot be read. They mirror the demo content the mobile app
// ships with: one requester with two published requests, one service
// provider with three quotes, one supply seller with a small catalog
// and a pack against the gardening job.

func seedServices() []entities.ServiceRequest {
	return []entities.ServiceRequest{
		{
			ID:            "serv-1",
			Title:         "Full garden cleanup",
			Description:   "Garden needs mowing, tree pruning and removal of dry leaves.",
			Category:      entities.CategoryGardening,
			Address:       "1234 July 18th Ave",
			City:          "Montevideo",
			PreferredDate: "2024-02-15",
			RequesterID:   "user-1",
			State:         entities.ServiceStatePublished,
			RequiredSupplies: []entities.RequiredSupply{
				{Name: "Fertilizer", Quantity: 2},
				{Name: "Grass seeds", Quantity: 1},
			},
			CreatedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "serv-2",
			Title:         "Facade painting",
			Description:   "Paint the front of my house, roughly 50 square meters. Need an estimate.",
			Category:      entities.CategoryPainting,
			Address:       "567 Artigas Blvd",
			City:          "Montevideo",
			PreferredDate: "2024-02-20",
			RequesterID:   "user-1",
			State:         entities.ServiceStatePublished,
			RequiredSupplies: []entities.RequiredSupply{
				{Name: "White paint", Quantity: 10},
				{Name: "Paint rollers", Quantity: 3},
			},
			CreatedAt: time.Date(2024, 1, 12, 14, 30, 0, 0, time.UTC),
		},
	}
}

func seedQuotes() []entities.Quote {
	return []entities.Quote{
		{
			ID:           "quot-1",
			ServiceID:    "serv-1",
			ProviderID:   "user-2",
			Price:        3500,
			LeadTimeDays: 5,
			Detail:       "Full cleanup, pruning and debris removal included. Guaranteed work.",
			CreatedAt:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "quot-2",
			ServiceID:    "serv-1",
			ProviderID:   "user-4",
			Price:        4200,
			LeadTimeDays: 7,
			Detail:       "Premium service with fertilization included.",
			CreatedAt:    time.Date(2024, 1, 11, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           "quot-3",
			ServiceID:    "serv-2",
			ProviderID:   "user-2",
			Price:        8500,
			LeadTimeDays: 10,
			Detail:       "Premium quality paint, surface preparation included.",
			CreatedAt:    time.Date(2024, 1, 13, 11, 0, 0, 0, time.UTC),
		},
	}
}

func seedSupplies() []entities.Supply {
	return []entities.Supply{
		{ID: "supp-1", SellerID: "user-3", Name: "White paint 4L", Category: entities.CategoryPainting, UnitPrice: 850, Unit: "liter", Stock: 15, CreatedAt: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)},
		{ID: "supp-2", SellerID: "user-3", Name: "Universal fertilizer 5kg", Category: entities.CategoryGardening, UnitPrice: 450, Unit: "kg", Stock: 20, CreatedAt: time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)},
		{ID: "supp-3", SellerID: "user-3", Name: "Bermuda grass seeds", Category: entities.CategoryGardening, UnitPrice: 320, Unit: "kg", Stock: 12, CreatedAt: time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)},
		{ID: "supp-4", SellerID: "user-3", Name: "Paint roller", Category: entities.CategoryPainting, UnitPrice: 180, Unit: "unit", Stock: 25, CreatedAt: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)},
		{ID: "supp-5", SellerID: "user-3", Name: "Electrical wire 2.5mm", Category: entities.CategoryElectrical, UnitPrice: 120, Unit: "meter", Stock: 100, CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
	}
}

func seedPacks() []entities.SupplyPack {
	return []entities.SupplyPack{
		{
			ID:        "pack-1",
			SellerID:  "user-3",
			ServiceID: "serv-1",
			Items: []entities.PackItem{
				{SupplyID: "supp-2", Name: "Universal fertilizer 5kg", Quantity: 2, UnitPrice: 450},
				{SupplyID: "supp-3", Name: "Bermuda grass seeds", Quantity: 1, UnitPrice: 320},
			},
			TotalPrice: 1220,
			CreatedAt:  time.Date(2024, 1, 11, 15, 0, 0, 0, time.UTC),
		},
	}
}

var (
	seedUsersOnce sync.Once
	seededUsers   []entities.User
)

// seedUsers returns the demo credential list. Hashes are derived once
// per process; the demo password for every account is "123".
func seedUsers() []entities.User {
	seedUsersOnce.Do(func() {
		hash := func(pw string) string {
			h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("[repository] seed hash failed: %v", err)
				return ""
			}
			return string(h)
		}
		pw := hash("123")
		seededUsers = []entities.User{
			{ID: "user-1", Email: "requester@mail.com", PasswordHash: pw, Name: "Juan Requester", Role: entities.RoleRequester},
			{ID: "user-2", Email: "provider@mail.com", PasswordHash: pw, Name: "Maria Provider", Role: entities.RoleServiceProvider},
			{ID: "user-3", Email: "supplies@mail.com", PasswordHash: pw, Name: "Carlos Seller", Role: entities.RoleSupplyProvider},
			{ID: "user-4", Email: "provider2@mail.com", PasswordHash: pw, Name: "Pedro Provider", Role: entities.RoleServiceProvider},
		}
	})
	return seededUsers
}
