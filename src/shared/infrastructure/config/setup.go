package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración para los middlewares compartidos
type SharedConfig struct {
	EnableGzip        bool
	EnableCORS        bool
	GzipExcludedPaths []string
	AllowOrigins      []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableGzip:        true,
		EnableCORS:        true,
		GzipExcludedPaths: []string{"/health", "/metrics"},
		// El frontend se sirve desde otro origen (render / localhost:3000)
		AllowOrigins: []string{"*"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	// CORS primero: el cliente web siempre corre en otro origen
	if config.EnableCORS {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = config.AllowOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Content-Type")
		router.Use(cors.New(corsCfg))
	}

	// Compresión gzip para las respuestas grandes (menú, historial de ventas)
	if config.EnableGzip {
		router.Use(gzip.Gzip(
			gzip.DefaultCompression,
			gzip.WithExcludedPaths(config.GzipExcludedPaths),
		))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// Por ejemplo:
	// - Autenticación/Autorización
	// - Medición de rendimiento
}
