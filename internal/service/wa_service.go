package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GhufranBkri/Sipema-backend/config"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/sirupsen/logrus"
)

// WaService mengirim pesan WhatsApp keluar lewat provider HTTP. Seluruh
// pengiriman best-effort: error hanya dicatat, tidak pernah dirambatkan ke
// transaksi bisnis pemanggil.
type WaService struct {
	apiURL string
	client *http.Client
}

func NewWaService() *WaService {
	return &WaService{
		apiURL: config.GetEnv("API_URL_WA", ""),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *WaService) Enabled() bool {
	return s.apiURL != ""
}

// FormatPhone62 menormalkan nomor lokal ke prefix internasional 62.
func FormatPhone62(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if clean == "" {
		return ""
	}
	if strings.HasPrefix(clean, "62") {
		return clean
	}
	return "62" + strings.TrimPrefix(clean, "0")
}

type waRecipient struct {
	WhatsappNumber string            `json:"whatsapp_number"`
	FirstName      string            `json:"first_name"`
	Attributes     map[string]string `json:"attributes"`
}

type waPayload struct {
	Data struct {
		BodyVariables []string `json:"body_variables"`
	} `json:"data"`
	Recipients []waRecipient `json:"recipients"`
}

// SendNewComplaint mengabari pelapor masyarakat bahwa pengaduannya terdaftar.
func (s *WaService) SendNewComplaint(to string, pengaduan *model.Pengaduan) error {
	nama := pengaduan.Nama
	if nama == "" {
		nama = "Pelapor"
	}
	tanggal := time.Now().Format("02 January 2006")

	payload := waPayload{}
	payload.Data.BodyVariables = []string{nama, pengaduan.ID, pengaduan.Judul, pengaduan.Deskripsi, tanggal}
	payload.Recipients = []waRecipient{{
		WhatsappNumber: FormatPhone62(to),
		FirstName:      nama,
		Attributes: map[string]string{
			"id":    pengaduan.ID,
			"judul": pengaduan.Judul,
		},
	}}

	return s.post(payload)
}

// SendStatusUpdate mengabari pelapor masyarakat perubahan status pengaduan.
func (s *WaService) SendStatusUpdate(to string, pengaduan *model.Pengaduan) error {
	payload := waPayload{}
	payload.Data.BodyVariables = []string{pengaduan.Judul, string(pengaduan.Status)}
	payload.Recipients = []waRecipient{{
		WhatsappNumber: FormatPhone62(to),
		FirstName:      pengaduan.Nama,
		Attributes: map[string]string{
			"id":     pengaduan.ID,
			"status": string(pengaduan.Status),
		},
	}}

	return s.post(payload)
}

func (s *WaService) post(payload waPayload) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("WhatsApp API tidak terjangkau")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("WhatsApp API status %d", resp.StatusCode)
		logrus.WithField("status", resp.StatusCode).Error("WhatsApp API menolak pesan")
		return err
	}

	logrus.WithField("recipients", len(payload.Recipients)).Info("Pesan WhatsApp terkirim")
	return nil
}
