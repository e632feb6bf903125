package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-crm/internal/infra/cache"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Redis é opcional: sem REDIS_ADDR as listagens vão direto ao banco.
	var rdb *redis.Client
	var listCache usecase.ListCacheInterface
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		ttl := 30 * time.Second
		if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
			if secs, err := strconv.Atoi(raw); err == nil {
				ttl = time.Duration(secs) * time.Second
			}
		}
		listCache = cache.New(rdb, ttl)
		log.Printf("cache de listagem habilitado (ttl %s)", ttl)
	}

	// RabbitMQ também é opcional: sem broker, nenhum evento é publicado e o
	// worker de notificação não sobe.
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.QueueProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"), os.Getenv("SALES_INBOX"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// Use cases: prospects e clients compartilham a implementação de contato.
	prospectUC := usecase.NewContactUseCase("prospect", database.NewProspectRepository(db), listCache, producer)
	clientUC := usecase.NewContactUseCase("client", database.NewClientRepository(db), listCache, producer)
	leadUC := usecase.NewLeadUseCase(database.NewLeadRepository(db), listCache, producer)

	prospectHandler := handlers.NewContactHandler(prospectUC)
	clientHandler := handlers.NewContactHandler(clientUC)
	leadHandler := handlers.NewLeadHandler(leadUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, rdb)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/api/routes", func(r chi.Router) {
		r.Route("/prospects", func(r chi.Router) {
			r.Get("/", prospectHandler.HandleList)
			r.Post("/", prospectHandler.HandleCreate)
			r.Put("/", prospectHandler.HandleUpdate)
			r.Delete("/", prospectHandler.HandleDelete)
		})
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", clientHandler.HandleList)
			r.Post("/", clientHandler.HandleCreate)
			r.Put("/", clientHandler.HandleUpdate)
			r.Delete("/", clientHandler.HandleDelete)
		})
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Post("/", leadHandler.HandleCreate)
			r.Put("/", leadHandler.HandleUpdate)
			r.Delete("/", leadHandler.HandleDelete)
		})
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Ligue CRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
