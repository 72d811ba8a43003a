package pagination

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/ONSdigital/log.go/v2/log"
)

// ListFunc fetches one page of items for a list endpoint, returning the page
// content and the total number of items matching the request.
type ListFunc func(w http.ResponseWriter, r *http.Request, pageNumber int, pageSize int) (list interface{}, totalCount int, err error)

// Paginator reads page_number/page_size query parameters and renders
// paginated list responses.
type Paginator struct {
	DefaultPageSize    int
	DefaultMaxPageSize int
}

// NewPaginator creates a paginator with the provided defaults
func NewPaginator(defaultPageSize, defaultMaxPageSize int) *Paginator {
	return &Paginator{
		DefaultPageSize:    defaultPageSize,
		DefaultMaxPageSize: defaultMaxPageSize,
	}
}

type page struct {
	Items      interface{} `json:"items"`
	Count      int         `json:"count"`
	PageNumber int         `json:"page_number"`
	PageSize   int         `json:"page_size"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
}

// Paginate wraps a ListFunc into an http.HandlerFunc that reads the page
// parameters, invokes the list function and writes the page envelope.
func (p *Paginator) Paginate(list ListFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber, pageSize, err := p.getPaginationParameters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, totalCount, err := list(w, r, pageNumber, pageSize)
		if err != nil {
			// list functions set their own response status
			return
		}

		returnPaginatedResults(w, r, renderPage(items, pageNumber, pageSize, totalCount))
	}
}

// getPaginationParameters returns the page number and size for the request.
// "page" is accepted as an alias of "page_number" for compatibility with
// older search URLs.
func (p *Paginator) getPaginationParameters(r *http.Request) (pageNumber int, pageSize int, err error) {
	logData := log.Data{}

	pageNumber = 1
	pageSize = p.DefaultPageSize

	pageParameter := r.URL.Query().Get("page_number")
	if pageParameter == "" {
		pageParameter = r.URL.Query().Get("page")
	}
	if pageParameter != "" {
		logData["page_number"] = pageParameter
		pageNumber, err = validatePositiveInt(pageParameter)
		if err != nil {
			log.Error(r.Context(), "invalid query parameter: page_number", err, logData)
			return 0, 0, err
		}
	}

	pageSizeParameter := r.URL.Query().Get("page_size")
	if pageSizeParameter != "" {
		logData["page_size"] = pageSizeParameter
		pageSize, err = validatePositiveInt(pageSizeParameter)
		if err != nil {
			log.Error(r.Context(), "invalid query parameter: page_size", err, logData)
			return 0, 0, err
		}
	}

	if pageSize > p.DefaultMaxPageSize {
		logData["max_page_size"] = p.DefaultMaxPageSize
		err = errs.ErrInvalidQueryParameter
		log.Error(r.Context(), "page size is greater than the maximum allowed", err, logData)
		return 0, 0, err
	}

	return pageNumber, pageSize, nil
}

func validatePositiveInt(parameter string) (int, error) {
	value, err := strconv.Atoi(parameter)
	if err != nil || value < 1 {
		return 0, errs.ErrInvalidQueryParameter
	}
	return value, nil
}

func renderPage(list interface{}, pageNumber, pageSize, totalCount int) page {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return page{
		Items:      list,
		Count:      listLength(list),
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func listLength(list interface{}) int {
	l := reflect.ValueOf(list)
	return l.Len()
}

func returnPaginatedResults(w http.ResponseWriter, r *http.Request, page page) {
	b, err := json.Marshal(page)
	if err != nil {
		log.Error(r.Context(), "api endpoint failed to marshal resource into bytes", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		log.Error(r.Context(), "api endpoint error writing response body", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
