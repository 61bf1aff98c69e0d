package constants

// Label - пара подписей для двуязычного интерфейса
type Label struct {
	En string
	Ar string
}

// CarBrands - закрытый список марок, с которыми работает каталог
var CarBrands = []string{
	"Toyota",
	"Hyundai",
	"Kia",
	"Volkswagen",
	"Mercedes-Benz",
	"BMW",
	"Skoda",
	"Seat",
	"Ford",
	"Peugeot",
	"Renault",
	"Nissan",
	"Mazda",
	"Honda",
	"Mitsubishi",
	"Jeep",
	"Audi",
	"Land Rover",
}

// PalestinianCities - закрытый список городов для поля location
var PalestinianCities = []string{
	"Jerusalem",
	"Ramallah",
	"Al-Bireh",
	"Nablus",
	"Jenin",
	"Tulkarm",
	"Qalqilya",
	"Salfit",
	"Tubas",
	"Jericho",
	"Bethlehem",
	"Beit Jala",
	"Beit Sahour",
	"Hebron",
	"Halhul",
	"Dura",
	"Yatta",
	"Gaza City",
	"Khan Younis",
	"Rafah",
	"Deir al-Balah",
	"Jabalia",
	"Beit Lahia",
	"Beit Hanoun",
}

// SortOption - режим сортировки с подписями
type SortOption struct {
	Value string
	Label Label
}

// SortOptions в том порядке, в котором их показывает интерфейс
var SortOptions = []SortOption{
	{Value: "distance", Label: Label{En: "Distance", Ar: "المسافة"}},
	{Value: "date_desc", Label: Label{En: "First listing date", Ar: "أول تاريخ إعلان"}},
	{Value: "price_asc", Label: Label{En: "Price (ascending)", Ar: "السعر (تصاعدي)"}},
	{Value: "price_desc", Label: Label{En: "Price (descending)", Ar: "السعر (تنازلي)"}},
	{Value: "km_asc", Label: Label{En: "Kilometer", Ar: "الكيلومترات"}},
	{Value: "km_desc", Label: Label{En: "Kilometer (descending)", Ar: "الكيلومترات (تنازلي)"}},
	{Value: "year_asc", Label: Label{En: "Model year (ascending)", Ar: "سنة الموديل (تصاعدي)"}},
	{Value: "year_desc", Label: Label{En: "Model year (descending)", Ar: "سنة الموديل (تنازلي)"}},
	{Value: "dealer", Label: Label{En: "DEALER", Ar: "تاجر"}},
}

// DictionaryEntry - значение фильтра, которое отправляет клиент, и его подпись
type DictionaryEntry struct {
	Value string
	Label Label
}

var FuelTypeOptions = []DictionaryEntry{
	{Value: "petrol", Label: Label{En: "Petrol", Ar: "بنزين"}},
	{Value: "diesel", Label: Label{En: "Diesel", Ar: "ديزل"}},
	{Value: "hybrid", Label: Label{En: "Hybrid", Ar: "هايبرد"}},
	{Value: "electric", Label: Label{En: "Electric", Ar: "كهرباء"}},
}

var TransmissionOptions = []DictionaryEntry{
	{Value: "automatic", Label: Label{En: "Automatic", Ar: "أوتوماتيك"}},
	{Value: "manual", Label: Label{En: "Manual", Ar: "يدوي"}},
}

var ColorOptions = []DictionaryEntry{
	{Value: "white", Label: Label{En: "White", Ar: "أبيض"}},
	{Value: "black", Label: Label{En: "Black", Ar: "أسود"}},
	{Value: "silver", Label: Label{En: "Silver", Ar: "فضي"}},
	{Value: "gray", Label: Label{En: "Gray", Ar: "سكني"}},
	{Value: "red", Label: Label{En: "Red", Ar: "أحمر"}},
	{Value: "blue", Label: Label{En: "Blue", Ar: "أزرق"}},
}

var EngineOptions = []DictionaryEntry{
	{Value: "1.4", Label: Label{En: "1400 cc", Ar: "1400 cc"}},
	{Value: "1.6", Label: Label{En: "1600 cc", Ar: "1600 cc"}},
	{Value: "2.0", Label: Label{En: "2000 cc", Ar: "2000 cc"}},
	{Value: "3.0", Label: Label{En: "3000 cc+", Ar: "3000 cc+"}},
}

var ConditionOptions = []DictionaryEntry{
	{Value: "All", Label: Label{En: "All", Ar: "الكل"}},
	{Value: "New", Label: Label{En: "New", Ar: "جديد"}},
	{Value: "Used", Label: Label{En: "Used", Ar: "مستعمل"}},
}

// Годы, которые предлагаются в селектах "от" и "до"
var (
	MinYearOptions = []int{2010, 2012, 2015, 2018, 2020, 2022}
	MaxYearOptions = []int{2023, 2024, 2025, 2026}
)

const (
	// DefaultPageSize - количество объявлений на странице каталога
	DefaultPageSize = 6
	// MaxPageSize ограничивает perPage из query-параметров
	MaxPageSize = 100
	// FeaturedListingsCount - сколько объявлений показывать на главной
	FeaturedListingsCount = 4
	// RelatedListingsCount - сколько похожих объявлений показывать на странице авто
	RelatedListingsCount = 4
)

// Фотографии салона, которые добавляются к галерее каждого объявления
var InteriorImages = []string{
	"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=1200",
	"https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=1200",
}
