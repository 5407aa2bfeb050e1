package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/provider"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return nil
	}
	return f.startErr
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped.Store(true)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, models.MigrateDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &fakeService{name: "failing", startErr: errors.New("boom")}
	blocking := &fakeService{name: "blocking", block: true}

	err := NewRunner(failing, blocking).Run(context.Background(), time.Second, nil)
	require.EqualError(t, err, "boom")
	require.True(t, failing.stopped.Load())
	require.True(t, blocking.stopped.Load())
}

func TestRunnerReturnsNilOnCancel(t *testing.T) {
	blocking := &fakeService{name: "blocking", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, NewRunner(blocking).Run(ctx, time.Second, nil))
	require.True(t, blocking.stopped.Load())
	require.Error(t, NewRunner().Run(context.Background(), time.Second, nil))
}

func TestNormalizeOptions(t *testing.T) {
	opts := normalizeOptions(Options{Mode: " API "})
	require.Equal(t, ModeAPI, opts.Mode)
	require.Equal(t, 10*time.Second, opts.ShutdownTimeout)
	require.NotNil(t, opts.Logger)
	require.Equal(t, ModeAll, normalizeOptions(Options{}).Mode)
	require.False(t, IsValidMode("cron"))
}

func TestBuildRunnerModes(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "debug"}}
	container, err := provider.NewContainer(cfg, db)
	require.NoError(t, err)
	t.Cleanup(container.Close)

	runner, err := BuildRunner(cfg, container, ModeAll)
	require.NoError(t, err)
	require.Equal(t, []string{"http"}, runner.ServiceNames())

	runner, err = BuildRunner(cfg, container, ModeAPI)
	require.NoError(t, err)
	require.Equal(t, []string{"http"}, runner.ServiceNames())

	_, err = BuildRunner(cfg, container, ModeWorker)
	require.Error(t, err)

	_, err = BuildRunner(cfg, container, "cron")
	require.Error(t, err)
}

func TestSeedInitialDataOrdersDemoBeforeAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "debug"},
		Catalog:   config.CatalogConfig{SeedDemo: true},
		Bootstrap: config.BootstrapConfig{AdminEmail: "root@rigforge.local", AdminPassword: "s3cretpass"},
	}
	require.NoError(t, SeedInitialData(cfg, db, false))

	var customer, admin models.User
	require.NoError(t, db.First(&customer, 1).Error)
	require.Equal(t, constants.RoleCustomer, customer.Role)
	require.NoError(t, db.First(&admin, 2).Error)
	require.Equal(t, constants.RoleAdmin, admin.Role)

	var admins int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", constants.RoleAdmin).Count(&admins).Error)
	require.Equal(t, int64(1), admins)
}

func TestSeedInitialDataCreatesDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "debug"},
		Bootstrap: config.BootstrapConfig{AdminEmail: "Root@RigForge.local", AdminPassword: "s3cretpass"},
	}
	require.NoError(t, SeedInitialData(cfg, db, false))

	var admin models.User
	require.NoError(t, db.Where("role = ?", constants.RoleAdmin).First(&admin).Error)
	require.Equal(t, "root@rigforge.local", admin.Email)

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.Zero(t, products)
}

func TestEnsureSQLiteDir(t *testing.T) {
	dir := t.TempDir()
	target := dir + "/nested/db"
	require.NoError(t, ensureSQLiteDir(config.DatabaseConfig{Driver: "sqlite", DSN: target + "/rigforge.db"}))
	require.DirExists(t, target)

	require.NoError(t, ensureSQLiteDir(config.DatabaseConfig{Driver: "postgres", DSN: "host=localhost"}))
	require.NoError(t, ensureSQLiteDir(config.DatabaseConfig{Driver: "sqlite", DSN: "file:x?mode=memory"}))
}
