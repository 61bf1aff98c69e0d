package domain

import "time"

type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelElectric FuelType = "Electric"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Listing - объявление о продаже автомобиля.
// Каталог владеет объявлениями все время жизни процесса и не изменяет их.
type Listing struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Year         int
	Condition    Condition
	Price        int64 // целое число в ILS
	Mileage      int64 // 0 для новых авто
	Engine       string
	FuelType     FuelType
	Transmission Transmission
	Color        string
	Location     string
	Description  string
	Images       []string // первое фото - обложка
	SellerID     string
	SellerName   string
	SellerPhone  string
	CreatedAt    time.Time
}

// CoverImage возвращает обложку объявления или пустую строку
func (l Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
