package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// DB is the MySQL engine. New and Delete each commit their own transaction,
// so a failed write is reported to the caller that made it.
type DB struct {
	*sqlx.DB
}

var _ storage.Storage = (*DB)(nil)

var tables = map[models.Kind]string{
	models.KindAmenity: "amenities",
	models.KindCity:    "cities",
	models.KindPlace:   "places",
	models.KindState:   "states",
	models.KindUser:    "users",
}

// Open connects, waits for the server to answer and ensures the schema.
func Open(dsn string) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	xdb.SetConnMaxLifetime(2 * time.Hour)
	xdb.SetMaxIdleConns(10)
	xdb.SetMaxOpenConns(50)

	var perr error
	for i := 0; i < 30; i++ {
		if perr = xdb.Ping(); perr == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if perr != nil {
		_ = xdb.Close()
		return nil, fmt.Errorf("database not reachable: %w", perr)
	}

	d := &DB{DB: xdb}
	if err := d.ensureSchema(context.Background()); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error { return d.DB.Close() }

func (d *DB) Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("db: unknown kind %q", kind)
	}
	obj := models.New(kind)
	if err := d.GetContext(ctx, obj, "SELECT * FROM "+table+" WHERE id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if p, ok := obj.(*models.Place); ok {
		links, err := d.amenityLinks(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.AmenityIDs = orEmpty(links[p.ID])
	}
	return obj, nil
}

func (d *DB) All(ctx context.Context, kind models.Kind) (map[string]models.Entity, error) {
	var (
		rows []models.Entity
		err  error
	)
	switch kind {
	case models.KindAmenity:
		rows, err = selectAll[*models.Amenity](ctx, d, tables[kind])
	case models.KindCity:
		rows, err = selectAll[*models.City](ctx, d, tables[kind])
	case models.KindPlace:
		rows, err = selectAll[*models.Place](ctx, d, tables[kind])
	case models.KindState:
		rows, err = selectAll[*models.State](ctx, d, tables[kind])
	case models.KindUser:
		rows, err = selectAll[*models.User](ctx, d, tables[kind])
	default:
		return nil, fmt.Errorf("db: unknown kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	var links map[string][]string
	if kind == models.KindPlace {
		if links, err = d.amenityLinks(ctx, ""); err != nil {
			return nil, err
		}
	}
	out := make(map[string]models.Entity, len(rows))
	for _, r := range rows {
		if p, ok := r.(*models.Place); ok {
			p.AmenityIDs = orEmpty(links[p.ID])
		}
		out[r.GetID()] = r
	}
	return out, nil
}

func selectAll[T models.Entity](ctx context.Context, d *DB, table string) ([]models.Entity, error) {
	var rows []T
	if err := d.SelectContext(ctx, &rows, "SELECT * FROM "+table+" ORDER BY created_at ASC, id ASC"); err != nil {
		return nil, err
	}
	out := make([]models.Entity, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out, nil
}

type linkRow struct {
	PlaceID   string `db:"place_id"`
	AmenityID string `db:"amenity_id"`
}

// amenityLinks returns amenity ids per place; an empty placeID loads every link.
func (d *DB) amenityLinks(ctx context.Context, placeID string) (map[string][]string, error) {
	q := "SELECT place_id, amenity_id FROM place_amenity"
	args := []any{}
	if placeID != "" {
		q += " WHERE place_id=?"
		args = append(args, placeID)
	}
	q += " ORDER BY place_id ASC, amenity_id ASC"

	var rows []linkRow
	if err := d.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := map[string][]string{}
	for _, r := range rows {
		out[r.PlaceID] = append(out[r.PlaceID], r.AmenityID)
	}
	return out, nil
}

// New upserts obj, replacing the link set of a place.
func (d *DB) New(ctx context.Context, obj models.Entity) error {
	if obj == nil {
		return errors.New("db: nil object")
	}
	if _, ok := tables[obj.Kind()]; !ok {
		return fmt.Errorf("db: unknown kind %q", obj.Kind())
	}
	return d.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := upsert(ctx, tx, obj); err != nil {
			return fmt.Errorf("db: save %s %s: %w", obj.Kind(), obj.GetID(), err)
		}
		return nil
	})
}

// Delete removes obj; children go through ON DELETE CASCADE.
func (d *DB) Delete(ctx context.Context, obj models.Entity) error {
	if obj == nil {
		return nil
	}
	table, ok := tables[obj.Kind()]
	if !ok {
		return fmt.Errorf("db: unknown kind %q", obj.Kind())
	}
	if _, err := d.ExecContext(ctx, "DELETE FROM "+table+" WHERE id=?", obj.GetID()); err != nil {
		return fmt.Errorf("db: delete %s %s: %w", obj.Kind(), obj.GetID(), err)
	}
	return nil
}

// Save has nothing to flush: every write is already committed.
func (d *DB) Save(context.Context) error { return nil }

func (d *DB) inTx(ctx context.Context, fn func(*sqlx.Tx) error) (err error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Foreign keys are never part of an update clause: they are fixed at creation.
var upserts = map[models.Kind]string{
	models.KindAmenity: `INSERT INTO amenities (id, created_at, updated_at, name)
		VALUES (:id, :created_at, :updated_at, :name)
		ON DUPLICATE KEY UPDATE updated_at=VALUES(updated_at), name=VALUES(name)`,
	models.KindCity: `INSERT INTO cities (id, created_at, updated_at, state_id, name)
		VALUES (:id, :created_at, :updated_at, :state_id, :name)
		ON DUPLICATE KEY UPDATE updated_at=VALUES(updated_at), name=VALUES(name)`,
	models.KindPlace: `INSERT INTO places (id, created_at, updated_at, city_id, user_id, name, description,
			number_rooms, number_bathrooms, max_guest, price_by_night, latitude, longitude)
		VALUES (:id, :created_at, :updated_at, :city_id, :user_id, :name, :description,
			:number_rooms, :number_bathrooms, :max_guest, :price_by_night, :latitude, :longitude)
		ON DUPLICATE KEY UPDATE updated_at=VALUES(updated_at), name=VALUES(name), description=VALUES(description),
			number_rooms=VALUES(number_rooms), number_bathrooms=VALUES(number_bathrooms), max_guest=VALUES(max_guest),
			price_by_night=VALUES(price_by_night), latitude=VALUES(latitude), longitude=VALUES(longitude)`,
	models.KindState: `INSERT INTO states (id, created_at, updated_at, name)
		VALUES (:id, :created_at, :updated_at, :name)
		ON DUPLICATE KEY UPDATE updated_at=VALUES(updated_at), name=VALUES(name)`,
	models.KindUser: `INSERT INTO users (id, created_at, updated_at, email, password, first_name, last_name)
		VALUES (:id, :created_at, :updated_at, :email, :password, :first_name, :last_name)
		ON DUPLICATE KEY UPDATE updated_at=VALUES(updated_at), email=VALUES(email), password=VALUES(password),
			first_name=VALUES(first_name), last_name=VALUES(last_name)`,
}

func upsert(ctx context.Context, tx *sqlx.Tx, obj models.Entity) error {
	if _, err := tx.NamedExecContext(ctx, upserts[obj.Kind()], obj); err != nil {
		return err
	}
	p, ok := obj.(*models.Place)
	if !ok {
		return nil
	}
	// Replace the link set wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenity WHERE place_id=?", p.ID); err != nil {
		return err
	}
	for _, aid := range p.AmenityIDs {
		if _, err := tx.ExecContext(ctx, "INSERT INTO place_amenity (place_id, amenity_id) VALUES (?,?)", p.ID, aid); err != nil {
			return err
		}
	}
	return nil
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// Dev-time schema (inline DDL)

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS states (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			name VARCHAR(128) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS cities (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			state_id VARCHAR(60) NOT NULL,
			name VARCHAR(128) NOT NULL,
			FOREIGN KEY (state_id) REFERENCES states(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS amenities (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			name VARCHAR(128) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			email VARCHAR(128) NOT NULL,
			password VARCHAR(128) NOT NULL,
			first_name VARCHAR(128) NOT NULL DEFAULT '',
			last_name VARCHAR(128) NOT NULL DEFAULT ''
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS places (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			city_id VARCHAR(60) NOT NULL,
			user_id VARCHAR(60) NOT NULL,
			name VARCHAR(128) NOT NULL,
			description VARCHAR(1024) NOT NULL DEFAULT '',
			number_rooms INT NOT NULL DEFAULT 0,
			number_bathrooms INT NOT NULL DEFAULT 0,
			max_guest INT NOT NULL DEFAULT 0,
			price_by_night INT NOT NULL DEFAULT 0,
			latitude DOUBLE NOT NULL DEFAULT 0,
			longitude DOUBLE NOT NULL DEFAULT 0,
			FOREIGN KEY (city_id) REFERENCES cities(id) ON DELETE CASCADE,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS place_amenity (
			place_id VARCHAR(60) NOT NULL,
			amenity_id VARCHAR(60) NOT NULL,
			PRIMARY KEY (place_id, amenity_id),
			FOREIGN KEY (place_id) REFERENCES places(id) ON DELETE CASCADE,
			FOREIGN KEY (amenity_id) REFERENCES amenities(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
