package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/fitdash/fitfile"
	"github.com/fitdash/models"
)

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	samples, err := listSamples(srvConfig.SamplesDir)
	if err != nil {
		log.Printf("Failed to list sample files: %v", err)
	}

	component := Landing(samples, models.Store.Recent(10))
	templ.Handler(component).ServeHTTP(w, r)
}

func uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, srvConfig.MaxUploadBytes)
	if err := r.ParseMultipartForm(srvConfig.MaxUploadBytes); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("fitfile")
	if err != nil {
		http.Error(w, "Missing fitfile field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Read the upload into memory; everything is session-scoped.
	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	analyzeAndRespond(w, r, header.Filename, bytes.NewReader(data))
}

func sampleHandler(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.URL.Query().Get("name"))
	if name == "." || !strings.HasSuffix(name, ".fit") {
		http.Error(w, "Invalid sample name", http.StatusBadRequest)
		return
	}

	f, err := os.Open(filepath.Join(srvConfig.SamplesDir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	analyzeAndRespond(w, r, name, f)
}

// analyzeAndRespond runs the extract-summarize-store pipeline and redirects
// to the activity page, or renders the decode-error / no-data page.
func analyzeAndRespond(w http.ResponseWriter, r *http.Request, name string, src io.Reader) {
	series, err := fitfile.Decode(src)
	if err != nil {
		log.Printf("Failed to decode %s: %v", name, err)
		component := ErrorPage("Could not read " + name + ": " + err.Error())
		templ.Handler(component, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	respondWithSeries(w, r, name, series)
}

// respondWithSeries summarizes a decoded series, stores it and redirects to
// its activity page. A series without heart-rate data gets the no-data page.
func respondWithSeries(w http.ResponseWriter, r *http.Request, name string, series fitfile.Series) {
	summary, err := fitfile.Summarize(series)
	if err != nil {
		if errors.Is(err, fitfile.ErrNoHeartRate) {
			templ.Handler(NoDataPage(name)).ServeHTTP(w, r)
			return
		}
		component := ErrorPage("Could not analyze " + name + ": " + err.Error())
		templ.Handler(component, templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
		return
	}

	hist := fitfile.NewHistogram(series, srvConfig.HistogramBins)
	act := models.Store.Put(name, series, summary, hist)
	log.Printf("Loaded %s: %d heart-rate samples", name, len(series))

	http.Redirect(w, r, "/activity?id="+act.ID, http.StatusSeeOther)
}

func activityHandler(w http.ResponseWriter, r *http.Request) {
	act, ok := models.Store.Get(r.URL.Query().Get("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	showRaw := r.URL.Query().Get("raw") == "1"

	lineChart := renderChart(generateLineChart(act.ChartData()))
	histChart := renderChart(generateHistogramChart(act.Histogram, act.Summary))

	component := ActivityPage(act, lineChart, histChart, showRaw)
	templ.Handler(component).ServeHTTP(w, r)
}

// listSamples returns the bundled .fit files, sorted by name. A missing
// samples directory is not an error; the landing page just offers nothing.
func listSamples(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".fit") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
