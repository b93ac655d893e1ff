package types

type CategoryCount struct {
	Category Category
	Count    int
}

type Summary struct {
	Total       int
	Categories  []CategoryCount
	TotalSizeMB float64
	OldestDate  string
	NewestDate  string
	Preview     []Record
}
