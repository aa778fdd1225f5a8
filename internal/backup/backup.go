package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"leadtrack-backend/internal/config"
	"leadtrack-backend/internal/db"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Scheduler periodically exports every collection as extended-JSON and
// uploads the snapshot to an S3-compatible bucket (R2, MinIO, AWS).
type Scheduler struct {
	client   *mongo.Client
	database string
	cfg      *config.Config

	ticker   *time.Ticker
	stopChan chan bool
	mu       sync.Mutex
}

var backupCollections = []string{
	db.LeadsCollection,
	db.SuggestionFormsCollection,
	db.ExpensesCollection,
}

func NewScheduler(client *mongo.Client, cfg *config.Config) *Scheduler {
	return &Scheduler{
		client:   client,
		database: cfg.Mongo.Database,
		cfg:      cfg,
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return // already running
	}

	interval := time.Duration(s.cfg.Backup.IntervalMinutes) * time.Minute
	s.ticker = time.NewTicker(interval)
	s.stopChan = make(chan bool)

	go func() {
		log.Println("[Backup] Starting automatic backup scheduler")
		s.runBackup()

		for {
			select {
			case <-s.ticker.C:
				s.runBackup()
			case <-s.stopChan:
				log.Println("[Backup] Scheduler stopped")
				return
			}
		}
	}()

	log.Printf("[Backup] Scheduler started (interval: %v)", interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		s.stopChan <- true
		s.ticker = nil
	}
}

func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("[Backup] Starting backup...")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		log.Printf("[Backup] Failed to configure S3 client: %v", err)
		return
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
		}
	})

	stamp := time.Now().Format("20060102_150405")
	for _, collection := range backupCollections {
		data, err := s.exportCollection(ctx, collection)
		if err != nil {
			log.Printf("[Backup] Failed to export %s: %v", collection, err)
			continue
		}

		key := fmt.Sprintf("leadtrack/%s/%s.json", stamp, collection)
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.cfg.Backup.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			log.Printf("[Backup] Failed to upload %s: %v", key, err)
			continue
		}

		log.Printf("[Backup] Success: %s (%d bytes)", key, len(data))
	}
}

// exportCollection dumps a whole collection as a JSON array of extended-JSON
// documents, so a snapshot restores cleanly with mongoimport.
func (s *Scheduler) exportCollection(ctx context.Context, name string) ([]byte, error) {
	cursor, err := s.client.Database(s.database).Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []json.RawMessage{}
	for cursor.Next(ctx) {
		doc, err := bson.MarshalExtJSON(cursor.Current, false, false)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return json.Marshal(docs)
}
