package models

import "gorm.io/gorm"

type Property struct {
	gorm.Model
	LandlordID uint `gorm:"index"`
	Landlord   Landlord
	Address    string `json:"address"`
	Type       string `json:"type"`
}

type Unit struct {
	gorm.Model
	PropertyID uint `gorm:"index"`
	Property   Property
	UnitNumber string  `json:"unitNumber"`
	Size       float64 `json:"size"`
}
