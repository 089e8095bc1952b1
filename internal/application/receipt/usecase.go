// Package receipt genera el recibo PDF de una orden para entregar al cliente.
package receipt

import (
	"context"
	"fmt"

	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

// PDFGenerator puerto de salida para el render del recibo. La implementación
// concreta vive en infrastructure/pdf.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}

// UseCase carga la orden y delega el render al generador.
type UseCase struct {
	orders repository.OrderRepository
	pdf    PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{orders: orders, pdf: pdf}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *UseCase) Generate(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.pdf.GenerateReceiptPDF(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: %w", err)
	}
	filename := fmt.Sprintf("receipt-%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
