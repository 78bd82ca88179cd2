package helper_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redis"
	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal"
	"github.com/pawpawapp/pawpaw-backend/internal/config"
	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
	"github.com/pawpawapp/pawpaw-backend/pkg/path"
)

const BaseURL = "http://localhost:8080"

// TestServerResources holds resources needed for test server setup
type TestServerResources struct {
	Cancel        context.CancelFunc
	Config        *config.Config
	Pool          *dockertest.Pool
	DBResource    *dockertest.Resource
	RedisResource *dockertest.Resource
	ORM           *gorm.DB
	Redis         *redis.Client
}

// SetupTestServer sets up the test environment including Docker resources and server
func SetupTestServer(ctx context.Context) (*TestServerResources, error) {
	ctx, cancel := context.WithCancel(ctx)
	var gormDB *gorm.DB
	var redisClient *redis.Client

	config, err := config.NewConfig("TEST")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}

	pool, dbResource, redisResource, err := setupDockerResources(config)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not set up Docker resources: %w", err)
	}

	pool.MaxWait = 10 * time.Second
	if err := pool.Retry(func() error {
		gormDB, err = connectToPostgres(dbResource, config)
		return err
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("could not connect to postgreSQL: %s", err)
	}

	fmt.Println("ℹ️ Database Connected")

	if err := pool.Retry(func() error {
		redisClient, err = connectToRedis(redisResource)
		return err
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("could not connect to redis: %s", err)
	}

	fmt.Println("ℹ️ Redis Connected")

	dbConnection, err := gormDB.DB()
	if err != nil {
		cancel()
		return nil, err
	}

	if err := runMigrations(dbConnection); err != nil {
		cancel()
		return nil, err
	}

	go internal.Run(ctx, os.Stdout, []string{"test"})

	if !waitForServer(ctx, config.Get("PORT")) {
		pool.Purge(redisResource)
		pool.Purge(dbResource)
		cancel()
		return nil, fmt.Errorf("server did not start within timeout")
	}

	return &TestServerResources{
		Cancel:        cancel,
		Config:        config,
		Pool:          pool,
		DBResource:    dbResource,
		RedisResource: redisResource,
		ORM:           gormDB,
		Redis:         redisClient,
	}, nil
}

// CleanupTestServer purges Docker resources
func (resources *TestServerResources) CleanupTestServer() {
	if resources == nil {
		return
	}

	if resources.Cancel != nil {
		resources.Cancel()
	}

	if resources.Pool != nil {
		if resources.DBResource != nil {
			if err := resources.Pool.Purge(resources.DBResource); err != nil {
				log.Printf("Could not purge PostgreSQL: %s", err)
			}
		}

		if resources.RedisResource != nil {
			if err := resources.Pool.Purge(resources.RedisResource); err != nil {
				log.Printf("Could not purge Redis: %s", err)
			}
		}
	}
}

func setupDockerResources(config *config.Config) (*dockertest.Pool, *dockertest.Resource, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %s", err)
	}

	dbOptions := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", config.Get("POSTGRES_USER")),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", config.Get("POSTGRES_PASSWORD")),
			fmt.Sprintf("POSTGRES_DB=%s", config.Get("POSTGRES_DB_NAME")),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%s/tcp", config.Get("POSTGRES_PORT"))}},
		},
	}
	dbResource, err := pool.RunWithOptions(dbOptions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start postgres: %s", err)
	}

	redisOptions := &dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%s/tcp", config.Get("REDIS_PORT"))}},
		},
	}
	redisResource, err := pool.RunWithOptions(redisOptions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start redis: %s", err)
	}

	return pool, dbResource, redisResource, nil
}

func connectToPostgres(dbResource *dockertest.Resource, config *config.Config) (*gorm.DB, error) {
	hostPort := strings.Split(dbResource.GetHostPort("5432/tcp"), ":")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		hostPort[0],
		hostPort[1],
		config.Get("POSTGRES_USER"),
		config.Get("POSTGRES_PASSWORD"),
		config.Get("POSTGRES_DB_NAME"))

	gormDB, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return gormDB, sqlDB.Ping()
}

func connectToRedis(redisResource *dockertest.Resource) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:" + redisResource.GetPort("6379/tcp"),
	})

	return redisClient, redisClient.Ping().Err()
}

func runMigrations(db *sql.DB) error {
	driver, err := migratePostgres.WithInstance(db, &migratePostgres.Config{})
	if err != nil {
		return err
	}

	basePath, err := os.Getwd()
	if err != nil {
		return err
	}

	migrationPath, err := path.FindRoot(basePath, "migrations", true)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationPath+"/migrations",
		"postgres", driver)
	if err != nil {
		return err
	}

	return m.Up()
}

func waitForServer(ctx context.Context, port string) bool {
	loopContext, cancelLoopContext := context.WithTimeout(ctx, 120*time.Second)
	defer cancelLoopContext()

	for {
		select {
		case <-loopContext.Done():
			return false
		default:
			resp, err := http.Get(fmt.Sprintf("http://localhost:%s/health", port))
			if err != nil {
				time.Sleep(1 * time.Second)
				continue
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				log.Println("✅ Server is ready")
				return true
			}
			time.Sleep(1 * time.Second)
		}
	}
}

func postJSON(t *testing.T, token, url string, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	return resp
}

// Decode reads the wrapped HTTP response envelope and returns its data.
func Decode[T any](t *testing.T, resp *http.Response) T {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response := http_util.HTTPResponse[T]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[T]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return response.Data
}

func SignUpUser(t *testing.T, username, password, email string) entity.SignUpResponse {
	resp := postJSON(t, "", BaseURL+"/v1/auth/sign-up", entity.CreateUserRequest{
		Name:     "testname",
		Username: username,
		Password: password,
		Email:    email,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	return Decode[entity.SignUpResponse](t, resp)
}

func SignInUser(t *testing.T, email, username, password string) (token string) {
	resp := postJSON(t, "", BaseURL+"/v1/auth/sign-in", entity.SignInRequest{
		Email:    email,
		Username: username,
		Password: password,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	return Decode[entity.SignInResponse](t, resp).Token
}

// SignUpAndSignIn registers a fresh user and returns a bearer token for it.
func SignUpAndSignIn(t *testing.T, username string) (entity.SignUpResponse, string) {
	email := username + "@pawpaw.test"
	user := SignUpUser(t, username, "secret_password", email)
	token := SignInUser(t, email, "", "secret_password")
	return user, token
}

func CreatePetProfile(t *testing.T, token, petName string) entity.PetProfile {
	resp := postJSON(t, token, BaseURL+"/v1/profiles", entity.UpsertProfileRequest{
		Name:     petName,
		Species:  "dog",
		Breed:    "corgi",
		AgeYears: 3,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	return Decode[entity.PetProfile](t, resp)
}

func Swipe(t *testing.T, token string, profileID uint, decision string) (entity.SwipeResponse, int) {
	resp := postJSON(t, token, BaseURL+"/v1/swipes", entity.SwipeRequest{
		ProfileID: profileID,
		Decision:  decision,
	})

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return entity.SwipeResponse{}, resp.StatusCode
	}

	return Decode[entity.SwipeResponse](t, resp), http.StatusOK
}

func SendGift(t *testing.T, token string, petID uint, kind string) (entity.SendGiftResponse, int) {
	resp := postJSON(t, token, BaseURL+"/v1/gifts", entity.SendGiftRequest{
		PetID: petID,
		Kind:  kind,
	})

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return entity.SendGiftResponse{}, resp.StatusCode
	}

	return Decode[entity.SendGiftResponse](t, resp), http.StatusOK
}

func GetWallet(t *testing.T, token string) entity.WalletResponse {
	req, err := http.NewRequest(http.MethodGet, BaseURL+"/v1/wallet", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	return Decode[entity.WalletResponse](t, resp)
}

// PopulateUsers seeds users with pet profiles straight into the database.
// The passwords are not hashed, so these accounts cannot sign in; they exist
// to fill the swipe feed.
func PopulateUsers(db *gorm.DB, count int) (profiles []entity.PetProfile, err error) {
	for i := 0; i < count; i++ {
		user := entity.User{
			Name:     faker.Name(),
			Email:    faker.Email(),
			Username: faker.Username(),
			Password: faker.Password(),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		profile := entity.PetProfile{
			OwnerID:  user.ID,
			Name:     faker.FirstName(),
			Species:  "dog",
			Breed:    faker.Word(),
			AgeYears: i%10 + 1,
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
