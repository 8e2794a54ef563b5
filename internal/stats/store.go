package stats

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RunRecord representa uma sessão de renderização registrada no banco.
type RunRecord struct {
	ID          uint      `gorm:"primaryKey"`
	Variant     string    `gorm:"index"`
	StartedAt   time.Time `gorm:"index"`
	DurationMs  int64
	Frames      int64
	AvgFPS      float64
	Toggles     int
	Screenshots int
	CreatedAt   time.Time // Para controle interno do GORM
}

// Store guarda o histórico de sessões em SQLite.
type Store struct {
	DB *gorm.DB
}

// Open abre (ou cria) o banco SQLite e roda as migrações.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Logger silencioso; erros voltam pelos retornos
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[Stats] Banco de dados SQLite aberto: %s", path)
	return &Store{DB: db}, nil
}

// Record grava uma sessão.
func (s *Store) Record(run *RunRecord) error {
	if s == nil || s.DB == nil {
		return errors.New("banco de dados não inicializado")
	}
	if err := s.DB.Create(run).Error; err != nil {
		return fmt.Errorf("falha ao gravar sessão: %w", err)
	}
	return nil
}

// Recent retorna as n sessões mais recentes, da mais nova para a mais antiga.
func (s *Store) Recent(n int) ([]RunRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("banco de dados não inicializado")
	}
	var runs []RunRecord
	err := s.DB.Order("started_at desc").Order("id desc").Limit(n).Find(&runs).Error
	return runs, err
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
