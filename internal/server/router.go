package server

import (
	"net/http"

	"factory-backend/internal/backup"
	"factory-backend/internal/config"
	"factory-backend/internal/db"
	"factory-backend/internal/handlers"
	"factory-backend/internal/httpx"
	"factory-backend/internal/services"

	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes applied. Every request
// is handled synchronously against the shared connection; the shell renders
// whatever comes back.
func New(dbConn *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay in the log
		if err := dbConn.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Client endpoints. List/Create via /clients; view, delete and export via
	// suffixed routes for simplicity.
	ch := handlers.NewClientHandler(services.NewClientService(dbConn))
	mux.HandleFunc("/clients", listCreate(ch.List, ch.Create))
	mux.HandleFunc("/clients/view", getOnly(ch.Get))
	mux.HandleFunc("/clients/delete", postOnly(ch.Delete))

	eh := handlers.NewExportHandler(dbConn, cfg.ExportDir)
	mux.HandleFunc("/clients/export", postOnly(eh.Client))

	// Order endpoints
	oh := handlers.NewOrderHandler(services.NewOrderService(dbConn))
	mux.HandleFunc("/orders", listCreate(oh.List, oh.Create))
	mux.HandleFunc("/orders/update", postOnly(oh.Update))
	mux.HandleFunc("/orders/delete", postOnly(oh.Delete))

	// Capital ledger
	caph := handlers.NewCapitalHandler(services.NewCapitalService(dbConn))
	mux.HandleFunc("/capital", listCreate(caph.List, caph.Create))
	mux.HandleFunc("/capital/delete", postOnly(caph.Delete))

	// Expenses / purchases (each create also writes a capital withdrawal)
	exh := handlers.NewExpenseHandler(services.NewExpenseService(dbConn))
	mux.HandleFunc("/expenses", listCreate(exh.List, exh.Create))
	mux.HandleFunc("/expenses/delete", postOnly(exh.Delete))

	puh := handlers.NewPurchaseHandler(services.NewPurchaseService(dbConn))
	mux.HandleFunc("/purchases", listCreate(puh.List, puh.Create))
	mux.HandleFunc("/purchases/delete", postOnly(puh.Delete))

	// Manufacturing
	prh := handlers.NewProductHandler(services.NewProductService(dbConn))
	mux.HandleFunc("/products", listCreate(prh.List, prh.Create))
	mux.HandleFunc("/products/delete", postOnly(prh.Delete))

	// Sales
	psh := handlers.NewProductSaleHandler(services.NewProductSaleService(dbConn))
	mux.HandleFunc("/product-sales", listCreate(psh.List, psh.Create))
	mux.HandleFunc("/product-sales/delete", postOnly(psh.Delete))

	// Credit report
	crh := handlers.NewCreditHandler(services.NewCreditService(dbConn))
	mux.HandleFunc("/credit", getOnly(crh.Report))

	// Backup trigger
	mgr := backup.New(cfg.BackupDir, cfg.BackupKeep, db.ParseDSN(cfg.DatabaseDSN))
	bh := handlers.NewBackupHandler(mgr)
	mux.HandleFunc("/backup", postOnly(bh.Trigger))

	return mux
}

// listCreate dispatches GET to list and POST to create, rejecting the rest.
func listCreate(list, create http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	}
}

// postOnly guards mutating routes: anything but POST gets an Allow header and 405.
func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

// getOnly guards read-only routes the same way.
func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}
