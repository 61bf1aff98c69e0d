package domain

// DictionaryItem - универсальная структура для элемента справочника
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}
