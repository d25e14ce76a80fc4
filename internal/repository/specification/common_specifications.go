package specification

import (
	"fmt"

	"activitylog-be/pkg/timeline"

	"gorm.io/gorm"
)

// ByLogicalDate filters rows tagged with one logical day.
type ByLogicalDate struct {
	Date timeline.Date
}

func (s ByLogicalDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("logical_date = ?", s.Date.Time())
}

// DateRange filters by an inclusive logical-date range; either bound
// may be left zero to leave that side open.
type DateRange struct {
	From timeline.Date
	To   timeline.Date
}

func (s DateRange) Apply(db *gorm.DB) *gorm.DB {
	if s.From != "" {
		db = db.Where("logical_date >= ?", s.From.Time())
	}
	if s.To != "" {
		db = db.Where("logical_date <= ?", s.To.Time())
	}
	return db
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}
