package domain

type (
	TopicId  = int64
	ReplyId  = int64
	UserId   = int64
	CourseId = int64

	Login      = string
	CourseName = string
)

// PageRequest travels thru layers: handler -> service -> storage.
// Page is 1-based.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}

// MapPage rebuilds a page with every item converted, keeping paging metadata.
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return Page[U]{Items: items, Page: p.Page, Size: p.Size, Total: p.Total}
}
