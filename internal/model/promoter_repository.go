package model

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type PromoterRepository struct {
	DB *gorm.DB
}

func (p *PromoterRepository) List() ([]Promoter, error) {
	var promoters []Promoter

	res := p.DB.Order("invites_count DESC").Find(&promoters)
	if res.Error != nil {
		log.Printf("error listing promoters: %s\n", res.Error)
		return nil, res.Error
	}

	return promoters, nil
}

func (p *PromoterRepository) Total() int64 {
	var totalRows int64

	p.DB.Model(&Promoter{}).Count(&totalRows)
	return totalRows
}

func (p *PromoterRepository) FindByID(id string) (*Promoter, error) {
	return p.find("id", id)
}

func (p *PromoterRepository) FindByCode(code string) (*Promoter, error) {
	return p.find("code", code)
}

func (p *PromoterRepository) find(field, value string) (*Promoter, error) {
	var promoter Promoter

	res := p.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&promoter)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promoter, res.Error
}
