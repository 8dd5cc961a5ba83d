// Package pagination builds the filter, ordering and window parts of list
// queries from already validated pagination parameters.
package pagination

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// Columns names the columns a sort order maps to. Amount may be empty for
// tables without one, in which case amount orders fall back to Date.
type Columns struct {
	Date   string
	Name   string
	Amount string
	ID     string
}

// OrderBy returns an ORDER BY clause for sort. Unknown or empty orders sort
// by latest first. ID breaks ties so pages are stable.
func OrderBy(sort domain.SortOrder, cols Columns) string {
	var primary string
	switch sort {
	case domain.SortOldest:
		primary = cols.Date + " ASC"
	case domain.SortAToZ:
		primary = cols.Name + " ASC"
	case domain.SortZToA:
		primary = cols.Name + " DESC"
	case domain.SortHighest:
		primary = orFallback(cols.Amount, cols.Date) + " DESC"
	case domain.SortLowest:
		primary = orFallback(cols.Amount, cols.Date) + " ASC"
	default:
		primary = cols.Date + " DESC"
	}
	return fmt.Sprintf(" ORDER BY %s, %s ASC", primary, cols.ID)
}

func orFallback(col, fallback string) string {
	if col == "" {
		return fallback
	}
	return col
}

// LikePattern turns a search term into a contains pattern for ILIKE with
// its wildcard characters escaped.
func LikePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}

// Filter accumulates WHERE conditions with numbered placeholders.
type Filter struct {
	clauses []string
	args    []any
}

// NewFilter starts a filter with the owner condition every list query has.
func NewFilter(ownerColumn, userID string) *Filter {
	f := &Filter{}
	f.Add(ownerColumn+" = ?", userID)
	return f
}

// Add appends a condition. Each "?" in clause is bound to the next arg.
func (f *Filter) Add(clause string, args ...any) *Filter {
	for _, arg := range args {
		f.args = append(f.args, arg)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(f.args)), 1)
	}
	f.clauses = append(f.clauses, clause)
	return f
}

// AddSearch matches term against column when term is not empty.
func (f *Filter) AddSearch(column, term string) *Filter {
	if term == "" {
		return f
	}
	return f.Add(column+` ILIKE ? ESCAPE '\'`, LikePattern(term))
}

// Where renders the conditions, or an empty string when there are none.
func (f *Filter) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (f *Filter) Args() []any {
	return f.args
}

// Window appends LIMIT and OFFSET for the page to the filter arguments and
// returns the clause.
func (f *Filter) Window(params domain.PaginationParams) string {
	f.args = append(f.args, params.PageSize, params.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(f.args)-1, len(f.args))
}
