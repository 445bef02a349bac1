// Package sap implementa el cliente del Service Layer de SAP Business One.
// El cliente reporta errores tipados (catalog.SyncError); la política de
// fallback al dataset local la decide el caller, no este paquete.
package sap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// sessionCookie nombre de la cookie de sesión del Service Layer.
const sessionCookie = "B1SESSION"

// Config conexión al Service Layer.
type Config struct {
	BaseURL   string
	CompanyDB string
	Username  string
	Password  string
	Warehouse string // bodega para el $filter de StockTransfers
}

// Client cliente HTTP del Service Layer. Implementa catalog.RemoteCatalog.
// La sesión se obtiene en la primera llamada y se reutiliza; no hay reintentos
// (todo fallo es one-shot, el caller degrada a su caché).
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu        sync.Mutex
	sessionID string
}

// NewClient construye el cliente con un timeout de red moderado (30 s): el
// Service Layer puede tardar, pero el sync corre en segundo plano.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchProducts trae el maestro de artículos y lo mapea al esquema local.
func (c *Client) FetchProducts(ctx context.Context) ([]*entity.Product, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}
	var env valueEnvelope[Item]
	if err := c.get(ctx, "/Items", &env); err != nil {
		return nil, catalog.NewSyncError("items", err)
	}
	products := make([]*entity.Product, 0, len(env.Value))
	for _, it := range env.Value {
		products = append(products, mapItem(it))
	}
	return products, nil
}

// FetchInventory trae los niveles de stock de la bodega configurada.
func (c *Client) FetchInventory(ctx context.Context) ([]*entity.InventoryLevel, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}
	path := "/StockTransfers"
	if c.cfg.Warehouse != "" {
		path += "?$filter=" + url.QueryEscape(fmt.Sprintf("WarehouseCode eq '%s'", c.cfg.Warehouse))
	}
	var env valueEnvelope[StockTransfer]
	if err := c.get(ctx, path, &env); err != nil {
		return nil, catalog.NewSyncError("inventario", err)
	}
	levels := make([]*entity.InventoryLevel, 0, len(env.Value))
	for _, st := range env.Value {
		levels = append(levels, mapStockTransfer(st))
	}
	return levels, nil
}

// TestConnection fuerza un login nuevo para verificar credenciales.
func (c *Client) TestConnection(ctx context.Context) error {
	c.mu.Lock()
	c.sessionID = ""
	c.mu.Unlock()
	return c.ensureSession(ctx)
}

// PushQuotation envía un pedido consolidado como borrador de cotización SAP
// (acción del panel de integración; el checkout del portal nunca llama aquí).
func (c *Client) PushQuotation(ctx context.Context, order *entity.ConsolidatedOrder, cardCode string) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}
	q := Quotation{
		CardCode: cardCode,
		Comments: "Portal: pedido " + order.ID,
	}
	for _, line := range order.Lines {
		q.DocumentLines = append(q.DocumentLines, QuotationLine{
			ItemCode:  line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	if err := c.post(ctx, "/Quotations", q, nil); err != nil {
		return catalog.NewSyncError("quotations", err)
	}
	return nil
}

// FetchOrders trae los pedidos remotos para el panel de integración.
func (c *Client) FetchOrders(ctx context.Context) ([]Order, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}
	var env valueEnvelope[Order]
	if err := c.get(ctx, "/Orders", &env); err != nil {
		return nil, catalog.NewSyncError("orders", err)
	}
	return env.Value, nil
}

// ── Sesión y transporte ───────────────────────────────────────────────────────

// ensureSession hace login si aún no hay sesión. Un solo intento.
func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID != "" {
		return nil
	}
	body, err := json.Marshal(loginRequest{
		CompanyDB: c.cfg.CompanyDB,
		UserName:  c.cfg.Username,
		Password:  c.cfg.Password,
	})
	if err != nil {
		return catalog.NewSyncError("login", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/Login", bytes.NewReader(body))
	if err != nil {
		return catalog.NewSyncError("login", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalog.NewSyncError("login", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return catalog.NewSyncError("login", fmt.Errorf("status %d", resp.StatusCode))
	}
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return catalog.NewSyncError("login", err)
	}
	if out.SessionID == "" {
		return catalog.NewSyncError("login", fmt.Errorf("respuesta sin SessionId"))
	}
	c.sessionID = out.SessionID
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.Lock()
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.sessionID})
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
