package part

// Filter narrows catalog listings. Zero values mean "no filter".
type Filter struct {
	Query     string
	Category  string
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
