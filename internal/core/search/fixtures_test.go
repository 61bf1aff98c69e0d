package search

import (
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

func ptr(v float64) *float64 { return &v }

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 10, 0, 0, 0, time.UTC)
}

func testCatalog() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Name: "Toyota Corolla 2021", Brand: "Toyota", Model: "Corolla", Year: 2021,
			Condition: domain.ConditionUsed, Price: 85000, Mileage: 42000, Engine: "1.6",
			FuelType: domain.FuelGasoline, Transmission: domain.TransmissionAutomatic, Color: "White",
			Location: "Ramallah", Description: "Clean car, single owner",
			Images: []string{"c1.jpg"}, SellerName: "Ahmad", CreatedAt: day(3),
		},
		{
			ID: "2", Name: "Hyundai Tucson", Brand: "Hyundai", Model: "Tucson", Year: 2019,
			Condition: domain.ConditionUsed, Price: 92000, Mileage: 80000, Engine: "2.0",
			FuelType: domain.FuelDiesel, Transmission: domain.TransmissionAutomatic, Color: "Black",
			Location: "Nablus", Description: "سيارة نظيفة",
			Images: []string{"t1.jpg"}, SellerName: "Nablus Auto Dealer", CreatedAt: day(5),
		},
		{
			ID: "3", Name: "Toyota Camry Hybrid", Brand: "Toyota", Model: "Camry", Year: 2023,
			Condition: domain.ConditionNew, Price: 160000, Mileage: 0, Engine: "2.0",
			FuelType: domain.FuelHybrid, Transmission: domain.TransmissionAutomatic, Color: "Silver",
			Location: "Hebron", Description: "Brand new",
			Images: []string{"cam.jpg"}, SellerName: "معرض تاجر الخليل", CreatedAt: day(1),
		},
		{
			ID: "4", Name: "Kia Picanto", Brand: "Kia", Model: "Picanto", Year: 2015,
			Condition: domain.ConditionUsed, Price: 35000, Mileage: 120000, Engine: "1.4",
			FuelType: domain.FuelGasoline, Transmission: domain.TransmissionManual, Color: "Red",
			Location: "Jenin", Description: "Economic city car",
			Images: []string{"p.jpg"}, SellerName: "Sami", CreatedAt: day(7),
		},
		{
			ID: "5", Name: "Toyota Yaris", Brand: "Toyota", Model: "yaris ", Year: 2016,
			Condition: domain.ConditionUsed, Price: 45000, Mileage: 95000, Engine: "1.4",
			FuelType: domain.FuelGasoline, Transmission: domain.TransmissionManual,
			Location: "Ramallah", Description: "",
			Images: []string{"y.jpg"}, SellerName: "Rami", CreatedAt: day(2),
		},
	}
}

func ids(listings []domain.Listing) []string {
	result := make([]string, len(listings))
	for i, l := range listings {
		result[i] = l.ID
	}
	return result
}
