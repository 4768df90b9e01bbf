// internal/models/color.go
package models

// Color carries no uniqueness constraint on name or hex code.
type Color struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100"`
	HexCode string `json:"hex_code" gorm:"size:20"`
}
