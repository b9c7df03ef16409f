package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	catalogUseCase "github.com/yusaCS/POS-system-project/src/catalog/application/usecase"
	catalogController "github.com/yusaCS/POS-system-project/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/yusaCS/POS-system-project/src/catalog/infrastructure/persistence"
	orderUseCase "github.com/yusaCS/POS-system-project/src/order/application/usecase"
	orderController "github.com/yusaCS/POS-system-project/src/order/infrastructure/controller"
	orderPersistence "github.com/yusaCS/POS-system-project/src/order/infrastructure/persistence"
	sharedConfig "github.com/yusaCS/POS-system-project/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Backend Service - Iniciando...")

	// Cargar .env si existe (desarrollo local)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	log.Printf("PROMETHEUS_ENABLED value: '%s'", prometheusEnabled)

	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for POS backend")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("/metrics endpoint registered successfully for POS backend")
	} else {
		log.Println("Prometheus metrics disabled for POS backend")
	}

	// Configurar GZIP, CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_db")

	// Crear string de conexión para pos_db
	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a pos_db: %s", connStr)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a pos_db establecida con éxito")
		}
	}

	// Health check (importante para Docker/K8s)
	router.GET("/health", func(ctx *gin.Context) {
		status := gin.H{"status": "ok"}
		if db == nil {
			status["database"] = "disconnected"
		} else if pingErr := db.Ping(); pingErr != nil {
			status["database"] = "disconnected"
		} else {
			status["database"] = "connected"
		}
		ctx.JSON(http.StatusOK, status)
	})

	// Configurar módulos Catalog y Order
	if db != nil {
		setupCatalogModule(router, db)
		setupOrderModule(router, db)
	} else {
		log.Println("⚠️  Módulos Catalog y Order deshabilitados (no DB connection)")
	}

	// Iniciar el servidor
	port := getEnv("PORT", "5000")
	log.Printf("✅ Servidor POS Backend iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog (menú e inventario)
func setupCatalogModule(router *gin.Engine, db *sql.DB) {
	log.Println("Configurando módulo Catalog...")

	// Crear repositorios
	menuRepo := catalogPersistence.NewMenuPostgresRepository(db)
	inventoryRepo := catalogPersistence.NewInventoryPostgresRepository(db)

	// Crear casos de uso
	listMenuUC := catalogUseCase.NewListMenuUseCase(menuRepo)
	listInventoryUC := catalogUseCase.NewListInventoryUseCase(inventoryRepo)
	menuAdminUC := catalogUseCase.NewMenuAdminUseCase(menuRepo)
	invAdminUC := catalogUseCase.NewInventoryAdminUseCase(inventoryRepo)

	// Crear controlador y registrar rutas
	catalogCtrl := catalogController.NewCatalogController(listMenuUC, listInventoryUC, menuAdminUC, invAdminUC)
	catalogCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
}

// setupOrderModule configura el módulo Order (ventas y reportes)
func setupOrderModule(router *gin.Engine, db *sql.DB) {
	log.Println("Configurando módulo Order...")

	// Crear repositorios
	salesRepo := orderPersistence.NewSalesHistoryPostgresRepository(db)
	menuRepo := catalogPersistence.NewMenuPostgresRepository(db)
	inventoryRepo := catalogPersistence.NewInventoryPostgresRepository(db)

	// Crear casos de uso
	submitOrderUC := orderUseCase.NewSubmitOrderUseCase(salesRepo)
	orderHistoryUC := orderUseCase.NewOrderHistoryUseCase(salesRepo)
	restockReportUC := orderUseCase.NewRestockReportUseCase(inventoryRepo)
	salesReportUC := orderUseCase.NewSalesReportUseCase(salesRepo)
	excessReportUC := orderUseCase.NewExcessReportUseCase(salesRepo, menuRepo, inventoryRepo)

	// Crear controladores y registrar rutas
	orderCtrl := orderController.NewOrderController(submitOrderUC, orderHistoryUC)
	reportCtrl := orderController.NewReportController(restockReportUC, salesReportUC, excessReportUC)
	orderCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Order configurado exitosamente")
}
