package search

import (
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// Синонимы значений фильтров. Клиент присылает и английские, и арабские варианты.
var (
	fuelAliases = map[string]string{
		"petrol":   string(domain.FuelGasoline),
		"diesel":   string(domain.FuelDiesel),
		"hybrid":   string(domain.FuelHybrid),
		"electric": string(domain.FuelElectric),
		"بنزين":    string(domain.FuelGasoline),
		"ديزل":     string(domain.FuelDiesel),
		"هايبرد":   string(domain.FuelHybrid),
		"كهرباء":   string(domain.FuelElectric),
	}

	transmissionAliases = map[string]string{
		"automatic": string(domain.TransmissionAutomatic),
		"manual":    string(domain.TransmissionManual),
		"أوتوماتيك": string(domain.TransmissionAutomatic),
		"يدوي":      string(domain.TransmissionManual),
	}
)

// NormalizeFuel приводит значение фильтра к каноничному типу топлива.
// Неизвестные значения возвращаются как есть.
func NormalizeFuel(value string) string {
	if canonical, ok := fuelAliases[strings.ToLower(value)]; ok {
		return canonical
	}
	return value
}

// NormalizeTransmission - то же для коробки передач
func NormalizeTransmission(value string) string {
	if canonical, ok := transmissionAliases[strings.ToLower(value)]; ok {
		return canonical
	}
	return value
}
