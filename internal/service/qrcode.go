package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(tableID uint32) ([]byte, error)
}

// TableQRGenerator encodes a link to a table's order listing, meant to be
// printed on the physical table.
type TableQRGenerator struct {
	BaseURL string
}

func (g TableQRGenerator) Generate(tableID uint32) ([]byte, error) {
	qrData := fmt.Sprintf("%s/tables/%d/items", g.BaseURL, tableID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
