// cmd/frota/main.go
package main

import (
	"log"
	"os"

	"frota-service/internal/api/handlers"
	"frota-service/internal/api/responses"
	"frota-service/internal/core/estoque"
	"frota-service/internal/core/relatorio"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const portaPadrao = "8084"

func main() {
	_ = godotenv.Load()
	responses.InitLogger()

	relatorioService := relatorio.NewService()
	relatorioHandler := handlers.NewRelatorioHandler(relatorioService)

	estoqueService := estoque.NewService()
	estoqueHandler := handlers.NewEstoqueHandler(estoqueService)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/relatorios/tanque/pdf", relatorioHandler.HandleTanquePDF)
		apiV1.POST("/relatorios/tanque/xlsx", relatorioHandler.HandleTanqueXLSX)
		apiV1.POST("/relatorios/comboio/pdf", relatorioHandler.HandleComboioPDF)
		apiV1.POST("/relatorios/comboio/xlsx", relatorioHandler.HandleComboioXLSX)
		apiV1.POST("/relatorios/combinado/pdf", relatorioHandler.HandleCombinadoPDF)
		apiV1.POST("/relatorios/horimetros/pdf", relatorioHandler.HandleHorimetrosPDF)
		apiV1.POST("/relatorios/horimetros/xlsx", relatorioHandler.HandleHorimetrosXLSX)

		apiV1.POST("/estoque/resumo", estoqueHandler.HandleResumo)
		apiV1.POST("/estoque/hoje", estoqueHandler.HandleResumoDeHoje)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "frota-service"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = portaPadrao
	}

	log.Printf("🚀 Frota Service (Go) iniciado e escutando na porta %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Falha ao iniciar o servidor de relatórios: ", err)
	}
}
