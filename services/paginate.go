package services

// QuestionsPerPage is the fixed window size for every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the items of the given 1-based page. Pages below 1 or
// past the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
