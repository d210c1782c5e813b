package model

import (
	"errors"
	"log"

	"github.com/doorlist/doorlist/internal/result"
	"gorm.io/gorm"
)

type GuestRepository struct {
	DB *gorm.DB
}

// GuestStats are the list-wide counters shown on the admin dashboard,
// always computed over the whole table regardless of active filters.
type GuestStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Used     int64 `json:"used"`
}

func (g *GuestRepository) List(page int, resultsPerPage int, search, status string) (result.Paginated[[]Guest], error) {
	var guests []Guest

	query := g.filtered(search, status)
	res := query.Scopes(Paginate(page, resultsPerPage)).Order("created_at DESC").Find(&guests)
	if res.Error != nil {
		log.Printf("error listing guests: %s\n", res.Error)
		return result.Paginated[[]Guest]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(g.Total(search, status)),
		guests,
	), nil
}

func (g *GuestRepository) Total(search, status string) int64 {
	var totalRows int64

	g.filtered(search, status).Count(&totalRows)
	return totalRows
}

func (g *GuestRepository) Stats() (GuestStats, error) {
	var stats GuestStats

	counts := []struct {
		dest *int64
		cond []interface{}
	}{
		{&stats.Total, nil},
		{&stats.Pending, []interface{}{"status = ?", StatusPending}},
		{&stats.Approved, []interface{}{"status = ?", StatusApproved}},
		{&stats.Used, []interface{}{"is_used = ?", true}},
	}

	for _, c := range counts {
		query := g.DB.Model(&Guest{})
		if c.cond != nil {
			query = query.Where(c.cond[0], c.cond[1:]...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			log.Printf("error reading guest stats: %s\n", err)
			return GuestStats{}, err
		}
	}

	return stats, nil
}

func (g *GuestRepository) FindByID(id string) (*Guest, error) {
	var guest Guest

	res := g.DB.Where("id = ?", id).First(&guest)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

func (g *GuestRepository) FindByEmail(email string) (*Guest, error) {
	var guest Guest

	res := g.DB.Where("email = ?", email).First(&guest)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

// DeleteAll wipes the guest list for a new event. Promoter invite
// totals intentionally survive the reset.
func (g *GuestRepository) DeleteAll() error {
	if res := g.DB.Where("1 = 1").Delete(&Guest{}); res.Error != nil {
		log.Printf("error resetting guest list: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (g *GuestRepository) filtered(search, status string) *gorm.DB {
	query := g.DB.Model(&Guest{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR invited_by LIKE ?", like, like, like, like)
	}
	if status != "" && status != "ALL" {
		query = query.Where("status = ?", status)
	}
	return query
}
