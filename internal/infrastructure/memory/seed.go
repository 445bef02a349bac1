package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// Cuentas demo del portal. Los roles siguen el contrato de derivación por
// substring del username.
const (
	SeedCustomerUsername = "acme.customer"
	SeedEmployeeUsername = "laura.employee"
	SeedAdminUsername    = "root.admin"
	SeedDemoPassword     = "demo1234"

	SeedCustomerID   = "user-acme"
	SeedCustomerCode = "C-10021"

	// SeedBackorderID pedido backorder pre-sembrado; ningún store crea más.
	SeedBackorderID = "order-bo-5001"
)

// SeedUsers siembra las cuentas demo con hash bcrypt de SeedDemoPassword.
func SeedUsers(repo *UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedDemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	users := []*entity.User{
		{
			ID:           SeedCustomerID,
			Username:     SeedCustomerUsername,
			Email:        "compras@acme-industrial.co",
			PasswordHash: string(hash),
			Role:         entity.RoleCustomer,
			CustomerCode: SeedCustomerCode,
			Preferences:  entity.Preferences{Portal: entity.RoleCustomer, Notifications: true},
			CreatedAt:    now,
		},
		{
			ID:           "user-laura",
			Username:     SeedEmployeeUsername,
			Email:        "laura@lubriportal.demo",
			PasswordHash: string(hash),
			Role:         entity.RoleEmployee,
			Preferences:  entity.Preferences{Portal: entity.RoleEmployee, Notifications: true, AutoSync: true},
			CreatedAt:    now,
		},
		{
			ID:           "user-root",
			Username:     SeedAdminUsername,
			Email:        "admin@lubriportal.demo",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Preferences:  entity.Preferences{Portal: entity.RoleAdmin, Notifications: true, AutoSync: true},
			CreatedAt:    now,
		},
	}
	for i, u := range users {
		u.Permissions = defaultSeedPermissions(u.Role)
		if err := repo.Create(users[i]); err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog siembra el catálogo mock de lubricantes y sus niveles de
// inventario. Es el dataset de respaldo cuando el sync SAP falla.
func SeedCatalog(products *ProductRepository, inventory *InventoryRepository) error {
	negotiated := decimal.RequireFromString("42.50")
	catalog := []*entity.Product{
		{
			ID:            "prod-hyd-46",
			ItemCode:      "LUB-HYD-046",
			Name:          "Aceite Hidráulico HV 46",
			Category:      "Hidráulicos",
			Description:   "Aceite hidráulico antidesgaste de alto índice de viscosidad.",
			Viscosity:     "ISO VG 46",
			Application:   "Sistemas hidráulicos industriales y móviles",
			Image:         "/images/hyd-46.jpg",
			InStock:       true,
			StartingPrice: decimal.RequireFromString("45.99"),
			CustomerPrice: &negotiated,
			Unit:          "galón",
			MinOrder:      4,
			Options: []entity.ProductOption{
				{Label: "Caneca 5 gal", Price: decimal.RequireFromString("45.99")},
				{Label: "Tambor 55 gal", Price: decimal.RequireFromString("39.90")},
			},
			Specs:     map[string]string{"ISO": "VG 46", "Punto de fluidez": "-39 °C"},
			SDSURL:    "/sds/lub-hyd-046.pdf",
			Documents: []entity.ProductDocument{{Name: "Ficha técnica", URL: "/docs/lub-hyd-046.pdf"}},
			UpdatedAt: time.Now(),
		},
		{
			ID:            "prod-gear-220",
			ItemCode:      "LUB-GEAR-220",
			Name:          "Aceite Sintético para Engranajes 220",
			Category:      "Engranajes",
			Description:   "Lubricante sintético EP para reductores de carga pesada.",
			Viscosity:     "ISO VG 220",
			Application:   "Reductores y engranajes cerrados",
			Image:         "/images/gear-220.jpg",
			InStock:       true,
			StartingPrice: decimal.RequireFromString("68.40"),
			Unit:          "galón",
			MinOrder:      2,
			Specs:         map[string]string{"ISO": "VG 220", "Base": "PAO"},
			UpdatedAt:     time.Now(),
		},
		{
			ID:            "prod-grease-ep2",
			ItemCode:      "LUB-GRS-EP2",
			Name:          "Grasa Multipropósito EP-2",
			Category:      "Grasas",
			Description:   "Grasa de litio EP para rodamientos y chasis.",
			Viscosity:     "NLGI 2",
			Application:   "Rodamientos, chasis, pasadores",
			Image:         "/images/grease-ep2.jpg",
			InStock:       true,
			StartingPrice: decimal.RequireFromString("12.75"),
			Unit:          "cartucho",
			MinOrder:      12,
			UpdatedAt:     time.Now(),
		},
		{
			ID:            "prod-coolant-hd",
			ItemCode:      "LUB-COOL-HD",
			Name:          "Refrigerante Heavy Duty 50/50",
			Category:      "Refrigerantes",
			Description:   "Refrigerante de larga vida para motores diésel.",
			Application:   "Flotas diésel y equipos de generación",
			Image:         "/images/coolant-hd.jpg",
			InStock:       true,
			StartingPrice: decimal.RequireFromString("21.30"),
			Unit:          "galón",
			MinOrder:      6,
			IsHazardous:   true,
			SDSURL:        "/sds/lub-cool-hd.pdf",
			UpdatedAt:     time.Now(),
		},
		{
			ID:            "prod-comp-68",
			ItemCode:      "LUB-COMP-068",
			Name:          "Aceite para Compresores 68",
			Category:      "Compresores",
			Description:   "Aceite mineral para compresores rotativos de tornillo.",
			Viscosity:     "ISO VG 68",
			Application:   "Compresores de tornillo y pistón",
			Image:         "/images/comp-68.jpg",
			InStock:       false,
			IsBulk:        true,
			StartingPrice: decimal.RequireFromString("54.10"),
			Unit:          "galón",
			MinOrder:      4,
			UpdatedAt:     time.Now(),
		},
	}
	if err := products.ReplaceAll(catalog); err != nil {
		return err
	}

	now := time.Now()
	levels := []*entity.InventoryLevel{
		{ItemCode: "LUB-HYD-046", WarehouseCode: "01", OnHand: 180, Committed: 35, OnOrder: 60, LastUpdated: now},
		{ItemCode: "LUB-GEAR-220", WarehouseCode: "01", OnHand: 24, Committed: 15, OnOrder: 0, LastUpdated: now},
		{ItemCode: "LUB-GRS-EP2", WarehouseCode: "01", OnHand: 300, Committed: 20, OnOrder: 0, LastUpdated: now},
		{ItemCode: "LUB-COOL-HD", WarehouseCode: "02", OnHand: 40, Committed: 40, OnOrder: 48, LastUpdated: now},
		{ItemCode: "LUB-COMP-068", WarehouseCode: "02", OnHand: 10, Committed: 10, OnOrder: 120, LastUpdated: now},
	}
	return inventory.ReplaceAll(levels)
}

// SeedOrders siembra el backorder mock del cliente demo: el saldo de un pedido
// que no alcanzó stock. Aparece en el historial y puede enlazarse al
// consolidar (related_order_id), pero nunca se crean más dinámicamente.
func SeedOrders(repo *OrderRepository) error {
	order := &entity.ConsolidatedOrder{
		ID:         SeedBackorderID,
		CustomerID: SeedCustomerID,
		Lines: []entity.OrderLine{
			{
				ProductID:   "prod-comp-68",
				ProductName: "Aceite para Compresores 68",
				Quantity:    24,
				UnitPrice:   decimal.RequireFromString("54.10"),
				TotalPrice:  decimal.RequireFromString("1298.40"),
				Backordered: 24,
			},
		},
		Total:     decimal.RequireFromString("1298.40"),
		Status:    entity.OrderStatusBackordered,
		CreatedAt: time.Now().Add(-72 * time.Hour),
	}
	return repo.Create(order)
}

// defaultSeedPermissions duplica la tabla de application/auth para no invertir
// la dependencia infraestructura→aplicación solo por la siembra.
func defaultSeedPermissions(role string) []string {
	perms := []string{entity.PermBrowseCatalog, entity.PermRequestQuote}
	switch role {
	case entity.RoleCustomer:
		perms = append(perms, entity.PermManageCart, entity.PermCheckout, entity.PermViewOrders)
	case entity.RoleEmployee, entity.RoleAdmin:
		perms = append(perms,
			entity.PermManageCart, entity.PermCheckout, entity.PermViewOrders,
			entity.PermPriceQuotes, entity.PermViewInventory, entity.PermSAPSync)
	}
	return perms
}

// NewSeededStores helper de composición: construye todos los repositorios y
// los siembra. Lo usan cmd/api y los tests de integración.
func NewSeededStores() (*UserRepository, *ProductRepository, *InventoryRepository, *QuoteRepository, *CartRepository, *OrderRepository, error) {
	users := NewUserRepository()
	products := NewProductRepository()
	inventory := NewInventoryRepository()
	quotes := NewQuoteRepository()
	carts := NewCartRepository()
	orders := NewOrderRepository()

	if err := SeedUsers(users); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	if err := SeedCatalog(products, inventory); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	if err := SeedOrders(orders); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	return users, products, inventory, quotes, carts, orders, nil
}
