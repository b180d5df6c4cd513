package api

import (
	"html/template"
	"net/http"

	"log/slog"

	"github.com/rskd/talent/pkg/models"
)

// CandidateProfile handles GET /candidates/{id}/pdf. It intentionally does
// not produce a PDF: it renders a print-ready HTML page and lets the browser
// do the rest, which keeps the server free of PDF toolchain dependencies.
func (h *CandidatesHandler) CandidateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	c, err := h.repo.GetCandidate(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "candidate profile")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := profileTemplate.Execute(w, newProfileView(c)); err != nil {
		logger.Error("render profile", slog.Any("err", err), slog.String("request_id", requestID(r)))
	}
}

type profileView struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	Stage      string
	Rating     float64
	Date       string
	Files      int
	Experience string
}

func newProfileView(c *models.Candidate) profileView {
	return profileView{
		Name:       c.Name,
		Email:      orNA(c.Email),
		Phone:      orNA(c.Phone),
		Role:       c.Role,
		Stage:      c.Stage,
		Rating:     c.Rating,
		Date:       c.Date.Format("02/01/2006"),
		Files:      c.Files,
		Experience: orNA(c.Experience),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

var profileTemplate = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html>
	<head>
		<title>Candidate Profile: {{.Name}}</title>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<style>
			body {
				font-family: Arial, sans-serif;
				margin: 20px;
				line-height: 1.6;
			}
			h1 {
				color: #333;
				border-bottom: 2px solid #6E38E0;
				padding-bottom: 10px;
			}
			.header {
				display: flex;
				justify-content: space-between;
				align-items: center;
			}
			.logo {
				font-weight: bold;
				font-size: 20px;
				color: #6E38E0;
			}
			.section {
				margin-bottom: 20px;
				border: 1px solid #eee;
				padding: 15px;
				border-radius: 5px;
			}
			.section-title {
				font-weight: bold;
				margin-bottom: 10px;
				color: #6E38E0;
			}
			.field {
				margin-bottom: 10px;
			}
			.label {
				font-weight: bold;
				color: #666;
				display: inline-block;
				width: 150px;
			}
			.value {
				display: inline-block;
			}
			@media print {
				body {
					print-color-adjust: exact;
					-webkit-print-color-adjust: exact;
				}
				.no-print {
					display: none;
				}
			}
			.print-button {
				background-color: #6E38E0;
				color: white;
				border: none;
				padding: 10px 20px;
				border-radius: 5px;
				cursor: pointer;
				font-weight: bold;
			}
		</style>
	</head>
	<body>
		<div class="header">
			<div class="logo">RSKD Talent</div>
			<button class="print-button no-print" onclick="window.print()">Print PDF</button>
		</div>

		<h1>Candidate Profile: {{.Name}}</h1>

		<div class="section">
			<div class="section-title">Personal Information</div>
			<div class="field">
				<div class="label">Name:</div>
				<div class="value">{{.Name}}</div>
			</div>
			<div class="field">
				<div class="label">Email:</div>
				<div class="value">{{.Email}}</div>
			</div>
			<div class="field">
				<div class="label">Phone:</div>
				<div class="value">{{.Phone}}</div>
			</div>
		</div>

		<div class="section">
			<div class="section-title">Application Details</div>
			<div class="field">
				<div class="label">Applied Role:</div>
				<div class="value">{{.Role}}</div>
			</div>
			<div class="field">
				<div class="label">Current Stage:</div>
				<div class="value">{{.Stage}}</div>
			</div>
			<div class="field">
				<div class="label">Rating:</div>
				<div class="value">{{.Rating}} / 5.0</div>
			</div>
			<div class="field">
				<div class="label">Application Date:</div>
				<div class="value">{{.Date}}</div>
			</div>
			<div class="field">
				<div class="label">Files Attached:</div>
				<div class="value">{{.Files}}</div>
			</div>
		</div>

		<div class="section">
			<div class="section-title">Professional Experience</div>
			<div class="field">
				<div class="label">Experience:</div>
				<div class="value">{{.Experience}}</div>
			</div>
		</div>
	</body>
</html>
`))
