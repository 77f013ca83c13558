package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gestorpag/api-contas-pagar/internal/baixa"
	"github.com/gestorpag/api-contas-pagar/internal/configuracao"
	"github.com/gestorpag/api-contas-pagar/internal/contrato"
	"github.com/gestorpag/api-contas-pagar/internal/dashboard"
	"github.com/gestorpag/api-contas-pagar/internal/empresa"
	"github.com/gestorpag/api-contas-pagar/internal/fornecedor"
	"github.com/gestorpag/api-contas-pagar/internal/planocontas"
	"github.com/gestorpag/api-contas-pagar/internal/tag"
	"github.com/gestorpag/api-contas-pagar/internal/titulo"
	"github.com/gestorpag/api-contas-pagar/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&empresa.Empresa{},
		&fornecedor.Fornecedor{},
		&tag.Tag{},
		&planocontas.PlanoContas{},
		&configuracao.Configuracao{},
		&contrato.Contrato{},
		&titulo.Titulo{},
		&baixa.TituloBaixa{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	empresaHandler := empresa.NewHandler(database)
	fornecedorHandler := fornecedor.NewHandler(database)
	tagHandler := tag.NewHandler(database)
	planoContasHandler := planocontas.NewHandler(database)
	configuracaoHandler := configuracao.NewHandler(database)
	contratoHandler := contrato.NewHandler(contrato.NewRepository(database))
	tituloHandler := titulo.NewHandler(titulo.NewRepository(database))
	baixaHandler := baixa.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Rotas de empresas
	api.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Deletar).Methods("DELETE")

	// Rotas de fornecedores
	api.HandleFunc("/fornecedores", fornecedorHandler.Criar).Methods("POST")
	api.HandleFunc("/fornecedores", fornecedorHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.Deletar).Methods("DELETE")

	// Rotas de tags
	api.HandleFunc("/tags", tagHandler.Criar).Methods("POST")
	api.HandleFunc("/tags", tagHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/tags/{id}", tagHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tags/{id}", tagHandler.Deletar).Methods("DELETE")

	// Rotas do plano de contas
	api.HandleFunc("/plano-contas", planoContasHandler.Criar).Methods("POST")
	api.HandleFunc("/plano-contas", planoContasHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/plano-contas/{id}", planoContasHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/plano-contas/{id}", planoContasHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/plano-contas/{id}", planoContasHandler.Deletar).Methods("DELETE")

	// Rotas de configuração
	api.HandleFunc("/configuracao", configuracaoHandler.Buscar).Methods("GET")
	api.HandleFunc("/configuracao", configuracaoHandler.Atualizar).Methods("PUT")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/gerar-titulos", contratoHandler.GerarTitulos).Methods("POST")
	api.HandleFunc("/contratos/{id}/cancelar", contratoHandler.Cancelar).Methods("POST")

	// Rotas de títulos
	api.HandleFunc("/titulos", tituloHandler.Criar).Methods("POST")
	api.HandleFunc("/titulos", tituloHandler.Listar).Methods("GET")
	api.HandleFunc("/titulos/{id}", tituloHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/titulos/{id}", tituloHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/titulos/{id}/cancelar", tituloHandler.Cancelar).Methods("PUT")

	// Rotas de baixas
	api.HandleFunc("/titulos/{id}/baixas", baixaHandler.Registrar).Methods("POST")
	api.HandleFunc("/titulos/{id}/baixas", baixaHandler.ListarPorTitulo).Methods("GET")
	api.HandleFunc("/baixas/{id}/cancelar", baixaHandler.Cancelar).Methods("POST")

	// Dashboard
	api.HandleFunc("/dashboard", dashboardHandler.Resumo).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
