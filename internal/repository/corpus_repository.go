package repository

import (
	"database/sql"

	"github.com/qlanfr/chat-bot/internal/model"

	"github.com/lib/pq"
)

type CorpusRepository struct {
	db *sql.DB
}

func NewCorpusRepository(db *sql.DB) *CorpusRepository {
	return &CorpusRepository{db: db}
}

// ListAll returns every stored record ordered by primary key. The corpus
// match depends on this order being stable between calls.
func (r *CorpusRepository) ListAll() ([]model.CorpusRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, question, answer, embedding
		FROM stock_chatbot_data
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.CorpusRecord
	for rows.Next() {
		var rec model.CorpusRecord
		var embedding pq.Float64Array
		err := rows.Scan(&rec.ID, &rec.Question, &rec.Answer, &embedding)
		if err != nil {
			return nil, err
		}
		rec.Embedding = []float64(embedding)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// SaveRecord inserts a record, skipping questions that already exist.
// It reports whether a new row was written.
func (r *CorpusRepository) SaveRecord(rec *model.CorpusRecord) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO stock_chatbot_data(question, answer, embedding)
		VALUES($1, $2, $3)
		ON CONFLICT (question) DO NOTHING
		RETURNING id
	`, rec.Question, rec.Answer, pq.Float64Array(rec.Embedding)).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	rec.ID = id
	return true, nil
}

func (r *CorpusRepository) CountRecords() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM stock_chatbot_data`).Scan(&total)
	return total, err
}
