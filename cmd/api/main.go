package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/siyam-display/catalog-api/internal/infra/database"
	"github.com/siyam-display/catalog-api/internal/infra/http/handlers"
	"github.com/siyam-display/catalog-api/internal/infra/http/middleware"
	"github.com/siyam-display/catalog-api/internal/infra/mail"
	"github.com/siyam-display/catalog-api/internal/infra/queue"
	"github.com/siyam-display/catalog-api/internal/infra/storage"
	"github.com/siyam-display/catalog-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	partRepo := database.NewPartRepository(db)
	contactRepo := database.NewContactRepository(db)

	// 2. Object storage
	bucket, err := storage.NewBucketClient(
		os.Getenv("BUCKET_ENDPOINT"),
		os.Getenv("BUCKET_ACCESS_KEY"),
		os.Getenv("BUCKET_SECRET_KEY"),
		getenv("BUCKET_NAME", "siyam-display"),
		os.Getenv("PUBLIC_BUCKET_URL"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Queue + worker (optional: lead capture works without a broker,
	// notifications just stop flowing)
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp091.Connection
	rabbitHost := os.Getenv("RABBITMQ_HOST")
	if rabbitHost != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			getenv("RABBITMQ_USER", "guest"),
			getenv("RABBITMQ_PASS", "guest"),
			rabbitHost,
			getenv("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"),
			atoi(getenv("MAIL_PORT", "587")),
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			getenv("MAIL_FROM", "no-reply@siyamradiators.com"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, getenv("SALES_EMAIL", "sales@siyamradiators.com"))
		go worker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_HOST not set, lead notifications disabled")
	}

	// 4. UseCases
	catalog := usecase.NewCatalogService(partRepo)
	captureContact := usecase.NewCaptureContactUseCase(contactRepo, producer)
	importParts := usecase.NewImportPartsUseCase(partRepo)
	uploadImages := usecase.NewUploadImagesUseCase(
		bucket,
		getenv("IMAGES_DIR", "public/product_images"),
		"product_images/",
	)

	// 5. Handlers
	productHandler := handlers.NewProductHandler(catalog)
	searchHandler := handlers.NewSearchHandler(catalog)
	contactHandler := handlers.NewContactHandler(captureContact)
	importHandler := handlers.NewImportHandler(importParts, getenv("CSV_FILE_PATH", "csv/parts.csv"))
	imageHandler := handlers.NewImageHandler(uploadImages)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/products", productHandler.HandleList)
	r.Get("/products/{category}/{siyam_ref}", productHandler.HandleGet)
	r.Get("/search", searchHandler.HandleSearch)
	r.Post("/contact", contactHandler.HandleCapture)
	r.Get("/config/upload_parts", importHandler.Handle)
	r.Post("/config/upload_images", imageHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("catalog API listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 587
	}
	return n
}
