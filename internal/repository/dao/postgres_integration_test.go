//go:build integration

package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/classquest/classquest-api/internal/db"
)

var postgresDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %s", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=classquest",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %s", err)
	}
	_ = resource.Expire(120)

	url := fmt.Sprintf("postgres://test:test@%s/classquest?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		var err error
		postgresDB, err = db.OpenPostgresWithURL(url)
		if err != nil {
			return err
		}
		sqlDB, err := postgresDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres: %s", err)
	}

	if err = InitTables(postgresDB); err != nil {
		log.Fatalf("could not migrate tables: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %s", err)
	}

	os.Exit(code)
}

func TestPostgres_DuplicateClassCode(t *testing.T) {
	ctx := context.Background()
	teachers := NewTeacherDAO(postgresDB)

	_, err := teachers.Insert(ctx, Teacher{ID: "pg-t-1", Name: "Ms. Kim", ClassCode: "PGDUP1"})
	require.NoError(t, err)

	_, err = teachers.Insert(ctx, Teacher{ID: "pg-t-2", Name: "Mr. Lee", ClassCode: "PGDUP1"})
	assert.ErrorIs(t, err, ErrDuplicateClassCode)
}

func TestPostgres_CompleteAndBuy(t *testing.T) {
	ctx := context.Background()
	students := NewStudentDAO(postgresDB)
	quests := NewQuestDAO(postgresDB)
	market := NewMarketDAO(postgresDB)

	_, err := SeedMarketItems(ctx, postgresDB, []MarketItem{{Name: "칭찬 스티커", Price: 30, Icon: "⭐"}})
	require.NoError(t, err)

	_, err = students.Insert(ctx, Student{ID: "pg-s-1", Name: "Alice", ClassCode: "PGCLS1"})
	require.NoError(t, err)

	quest, err := quests.Insert(ctx, Quest{ClassCode: "PGCLS1", Title: "Homework", Reward: 50})
	require.NoError(t, err)

	_, _, err = quests.Complete(ctx, "pg-s-1", quest.ID)
	require.NoError(t, err)

	_, _, err = quests.Complete(ctx, "pg-s-1", quest.ID)
	assert.ErrorIs(t, err, ErrQuestAlreadyCompleted)

	listed, err := quests.FindByClassCode(ctx, "PGCLS1", "pg-s-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)

	items, err := market.FindAllItems(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	_, student, err := market.Buy(ctx, "pg-s-1", items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 50-items[0].Price, student.Points)
}
