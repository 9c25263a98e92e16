package localstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// Registros persistidos: forma estricta del JSON guardado. Las etiquetas mantienen los
// nombres de campo originales del prototipo.

type userRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password,omitempty"`
	Role       string  `json:"role"`
	TotalHours float64 `json:"totalHours"`
	Owner      bool    `json:"owner,omitempty"`
}

func (r userRecord) validate() error {
	if r.ID == "" || r.Email == "" {
		return errors.New("usuario sin id o email")
	}
	if !entity.ValidRole(r.Role) {
		return fmt.Errorf("rol desconocido %q", r.Role)
	}
	if r.TotalHours < 0 {
		return errors.New("totalHours negativo")
	}
	return nil
}

func (r userRecord) toEntity() entity.User {
	return entity.User{ID: r.ID, Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role, TotalHours: r.TotalHours, Owner: r.Owner}
}

func userRecordOf(u entity.User) userRecord {
	return userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password, Role: u.Role, TotalHours: u.TotalHours, Owner: u.Owner}
}

type sessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r sessionRecord) validate() error {
	if r.ID == "" {
		return errors.New("sesión sin id")
	}
	if !entity.ValidRole(r.Role) {
		return fmt.Errorf("rol desconocido %q", r.Role)
	}
	return nil
}

type productRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Fabric   string `json:"fabric"`
	Occasion string `json:"occasion"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"`
}

func (r productRecord) validate() error {
	if r.ID == "" {
		return errors.New("producto sin id")
	}
	if !entity.ValidGender(r.Gender) {
		return fmt.Errorf("género desconocido %q", r.Gender)
	}
	if !entity.ValidOccasion(r.Occasion) {
		return fmt.Errorf("ocasión desconocida %q", r.Occasion)
	}
	if r.Stock < 0 {
		return errors.New("stock negativo")
	}
	return nil
}

func (r productRecord) toEntity() entity.Product {
	return entity.Product{
		ID: r.ID, Name: r.Name, Category: r.Category, Gender: r.Gender, Size: r.Size,
		Color: r.Color, Fabric: r.Fabric, Occasion: r.Occasion, Stock: r.Stock, ImageURL: r.ImageURL,
	}
}

func productRecordOf(p entity.Product) productRecord {
	return productRecord{
		ID: p.ID, Name: p.Name, Category: p.Category, Gender: p.Gender, Size: p.Size,
		Color: p.Color, Fabric: p.Fabric, Occasion: p.Occasion, Stock: p.Stock, ImageURL: p.ImageURL,
	}
}

type timeEntryRecord struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
}

func (r timeEntryRecord) validate() error {
	if r.ID == "" || r.UserID == "" {
		return errors.New("fichaje sin id o userId")
	}
	if r.ClockIn.IsZero() {
		return errors.New("fichaje sin clockIn")
	}
	if r.ClockOut != nil && r.ClockOut.Before(r.ClockIn) {
		return errors.New("clockOut anterior a clockIn")
	}
	return nil
}

func (r timeEntryRecord) toEntity() entity.TimeEntry {
	return entity.TimeEntry{ID: r.ID, UserID: r.UserID, ClockIn: r.ClockIn, ClockOut: r.ClockOut}
}

func timeEntryRecordOf(e entity.TimeEntry) timeEntryRecord {
	return timeEntryRecord{ID: e.ID, UserID: e.UserID, ClockIn: e.ClockIn, ClockOut: e.ClockOut}
}

func validCategory(name string) error {
	if entity.NormalizeCategory(name) == "" {
		return errors.New("categoría vacía")
	}
	return nil
}

func validID(id string) error {
	if id == "" {
		return errors.New("id vacío")
	}
	return nil
}
