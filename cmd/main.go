package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/fdelfino93/locacao-sub002/internal/auth"
	"github.com/fdelfino93/locacao-sub002/internal/busca"
	"github.com/fdelfino93/locacao-sub002/internal/contrato"
	"github.com/fdelfino93/locacao-sub002/internal/fatura"
	"github.com/fdelfino93/locacao-sub002/internal/imovel"
	"github.com/fdelfino93/locacao-sub002/internal/locador"
	"github.com/fdelfino93/locacao-sub002/internal/locatario"
	"github.com/fdelfino93/locacao-sub002/internal/middleware"
	"github.com/fdelfino93/locacao-sub002/internal/usuario"
	"github.com/fdelfino93/locacao-sub002/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conexao, err := db.Conectar()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}

	if err := conexao.AutoMigrate(
		&usuario.Usuario{},
		&locador.Locador{},
		&locador.ContaBancaria{},
		&locatario.Locatario{},
		&imovel.Imovel{},
		&contrato.Contrato{},
		&contrato.Garantia{},
		&contrato.Pet{},
		&contrato.ContratoLocador{},
		&contrato.ContratoLocatario{},
		&contrato.Plano{},
		&contrato.DadosBancariosCorretor{},
	); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conexao)
	locadorHandler := locador.NewHandler(conexao)
	locatarioHandler := locatario.NewHandler(conexao)
	imovelHandler := imovel.NewHandler(conexao)
	contratoHandler := contrato.NewHandler(conexao)
	buscaHandler := busca.NewHandler(conexao)
	faturaHandler := fatura.NewHandler(conexao)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logger)

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de locadores e contas bancárias
	api.HandleFunc("/locadores", locadorHandler.Criar).Methods("POST")
	api.HandleFunc("/locadores", locadorHandler.Listar).Methods("GET")
	api.HandleFunc("/locadores/{id}", locadorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/locadores/{id}", locadorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/locadores/{id}", locadorHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/locadores/{id}/contas", locadorHandler.CriarConta).Methods("POST")
	api.HandleFunc("/locadores/{id}/contas", locadorHandler.ListarContas).Methods("GET")
	api.HandleFunc("/contas/{id}", locadorHandler.DeletarConta).Methods("DELETE")

	// Rotas de locatários
	api.HandleFunc("/locatarios", locatarioHandler.Criar).Methods("POST")
	api.HandleFunc("/locatarios", locatarioHandler.Listar).Methods("GET")
	api.HandleFunc("/locatarios/{id}", locatarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/locatarios/{id}", locatarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/locatarios/{id}", locatarioHandler.Deletar).Methods("DELETE")

	// Rotas de imóveis
	api.HandleFunc("/imoveis", imovelHandler.Criar).Methods("POST")
	api.HandleFunc("/imoveis", imovelHandler.Listar).Methods("GET")
	api.HandleFunc("/imoveis/{id}", imovelHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/imoveis/{id}", imovelHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/imoveis/{id}", imovelHandler.Deletar).Methods("DELETE")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/rateio/validacao", contratoHandler.ValidacaoRateio).Methods("GET")
	api.HandleFunc("/contratos/{id}/demonstrativo", faturaHandler.Gerar).Methods("POST")

	// Busca global
	api.HandleFunc("/busca", buscaHandler.Buscar).Methods("GET")

	// Rotas de usuários (administração)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	logrus.WithField("porta", porta).Info("servidor iniciado")
	logrus.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
