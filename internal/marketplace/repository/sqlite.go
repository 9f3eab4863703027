package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"marketplace/internal/common/apperr"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MemoryPath открывает базу в памяти процесса.
const MemoryPath = ":memory:"

// ============================================================
// SQLite Repository
// ============================================================

// Repository хранит пользователей, заказы и отклики.
// Все изменения сериализуются одним мьютексом, чтения идут без блокировки.
type Repository struct {
	db *sql.DB
	mu sync.Mutex
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет схему. Повторный запуск безопасен.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Ping проверяет доступность хранилища.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return apperr.Wrap(apperr.StorageUnavailable, "ping storage", err)
	}
	return nil
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	dsn := MemoryPath
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// Одно соединение: in-memory база живёт ровно в нём.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	return db, nil
}

// ============================================================
// Error Helpers
// ============================================================

func storageErr(op string, err error) error {
	return apperr.Wrap(apperr.StorageUnavailable, op, err)
}

func notFound(kind string, id int64) error {
	return apperr.Newf(apperr.NotFound, "%s %d not found", kind, id)
}

// checkAffected превращает 0 затронутых строк в NotFound.
func checkAffected(res sql.Result, op, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}
