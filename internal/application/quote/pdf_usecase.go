package quote

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
)

// OrderPDFGenerator puerto de salida para la confirmación de pedido en PDF.
// La implementación concreta usa Maroto; para tests se inyecta un mock.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.ConsolidatedOrder, customer *entity.User) ([]byte, error)
}

// PDFUseCase genera el documento de confirmación de un pedido consolidado.
type PDFUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, generator OrderPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, userRepo: userRepo, generator: generator}
}

// DownloadOrderPDF recupera el pedido, verifica que el solicitante sea su
// propietario (o personal interno) y genera la confirmación.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound  si el pedido no existe.
//   - domain.ErrForbidden si el pedido no pertenece al solicitante.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, actorRole, actorID, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.CustomerID != actorID && actorRole != entity.RoleEmployee && actorRole != entity.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}

	// El propietario puede ser una clave de sesión invitada sin usuario.
	customer, err := uc.userRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	pdfBytes, err := uc.generator.GenerateOrderPDF(ctx, order, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar confirmación: %w", err)
	}
	filename := fmt.Sprintf("pedido-%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
