package app

import (
	"fmt"
	"math"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/godxf/pkg/analysis"
	"github.com/philipparndt/godxf/pkg/dxf"
	"github.com/philipparndt/godxf/pkg/viewer"
	"github.com/philipparndt/godxf/pkg/watcher"
)

// App is the interactive DXF viewer window
type App struct {
	window          fyne.Window
	doc             *dxf.Document
	path            string
	view            *DrawingView
	watch           *watcher.DrawingWatcher
	measurementInfo *MeasurementInfo
}

// MeasurementInfo holds the labels of the measurement side panel
type MeasurementInfo struct {
	point1Label    *widget.Label
	point2Label    *widget.Label
	distanceXLabel *widget.Label
	distanceYLabel *widget.Label
	totalDistLabel *widget.Label
	drawingLabel   *widget.Label
	warningsLabel  *widget.Label
}

// Run starts the viewer, optionally opening a drawing right away
func Run(path string) {
	a := fyneapp.New()
	w := a.NewWindow("GoDXF - 2D Drawing Viewer")

	appInstance := &App{window: w}

	if path != "" {
		appInstance.loadFile(path)
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()

	if appInstance.watch != nil {
		appInstance.watch.Close()
	}
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GoDXF")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open DXF File' to load a drawing")

	openButton := widget.NewButton("Open DXF File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	doc, err := dxf.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load DXF file: %w", err), a.window)
		return
	}

	a.doc = doc
	a.path = filename
	a.setupMainUI()
	a.watchFile(filename)
}

// watchFile reloads the drawing when it changes on disk
func (a *App) watchFile(filename string) {
	if a.watch == nil {
		watch, err := watcher.NewDrawingWatcher(300 * time.Millisecond)
		if err != nil {
			return
		}
		a.watch = watch
		a.watch.Start()
	}

	_ = a.watch.Watch(filename, func(path string) {
		fyne.Do(func() {
			a.reload()
		})
	})
}

// reload re-parses the current file and swaps the document in place
func (a *App) reload() {
	doc, err := dxf.Parse(a.path)
	if err != nil {
		return
	}
	a.doc = doc
	a.view.SetDocument(doc)
	a.updateDrawingInfo()
}

func (a *App) setupMainUI() {
	a.measurementInfo = &MeasurementInfo{
		point1Label:    widget.NewLabel("Point 1: Not selected"),
		point2Label:    widget.NewLabel("Point 2: Not selected"),
		distanceXLabel: widget.NewLabel("Distance X: -"),
		distanceYLabel: widget.NewLabel("Distance Y: -"),
		totalDistLabel: widget.NewLabel("Total Distance: -"),
		drawingLabel:   widget.NewLabel(""),
		warningsLabel:  widget.NewLabel(""),
	}

	a.measurementInfo.totalDistLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.view = NewDrawingView(a.doc)
	a.view.SetOnMeasure(func(m viewer.Measurement) {
		a.updateMeasurements(m)
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})
	clearButton := widget.NewButton("Clear Measurement", func() {
		a.view.ClearMeasurement()
	})
	resetButton := widget.NewButton("Reset View", func() {
		a.view.ResetView()
	})

	a.updateDrawingInfo()

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on vertices to measure\n" +
			"• Drag to pan the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Select 2 points for a distance",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Drawing Information:"),
		widget.NewSeparator(),
		a.measurementInfo.drawingLabel,
		a.measurementInfo.warningsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		widget.NewSeparator(),
		a.measurementInfo.point1Label,
		a.measurementInfo.point2Label,
		widget.NewSeparator(),
		a.measurementInfo.distanceXLabel,
		a.measurementInfo.distanceYLabel,
		a.measurementInfo.totalDistLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		clearButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
}

func (a *App) updateDrawingInfo() {
	result := analysis.AnalyzeDocument(a.doc)
	info := fmt.Sprintf(
		"File: %s\nLines: %d\nCircles: %d\nArcs: %d\nPolylines: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f",
		a.path,
		result.LineCount,
		result.CircleCount,
		result.ArcCount,
		result.PolylineCount,
		result.Dimensions.X,
		result.Dimensions.Y,
	)
	a.measurementInfo.drawingLabel.SetText(info)

	if len(a.doc.Warnings) > 0 {
		a.measurementInfo.warningsLabel.SetText(fmt.Sprintf("Warnings: %d", len(a.doc.Warnings)))
	} else {
		a.measurementInfo.warningsLabel.SetText("")
	}
}

func (a *App) updateMeasurements(m viewer.Measurement) {
	if m.Start == nil {
		a.measurementInfo.point1Label.SetText("Point 1: Not selected")
		a.measurementInfo.point2Label.SetText("Point 2: Not selected")
		a.measurementInfo.distanceXLabel.SetText("Distance X: -")
		a.measurementInfo.distanceYLabel.SetText("Distance Y: -")
		a.measurementInfo.totalDistLabel.SetText("Total Distance: -")
		return
	}

	p1 := *m.Start
	a.measurementInfo.point1Label.SetText(fmt.Sprintf("Point 1: (%.3f, %.3f)", p1.X, p1.Y))

	if m.End == nil {
		a.measurementInfo.point2Label.SetText("Point 2: Click to select")
		a.measurementInfo.distanceXLabel.SetText("Distance X: -")
		a.measurementInfo.distanceYLabel.SetText("Distance Y: -")
		a.measurementInfo.totalDistLabel.SetText("Total Distance: -")
		return
	}

	p2 := *m.End
	a.measurementInfo.point2Label.SetText(fmt.Sprintf("Point 2: (%.3f, %.3f)", p2.X, p2.Y))

	a.measurementInfo.distanceXLabel.SetText(fmt.Sprintf("Distance X: %.6f units", math.Abs(p2.X-p1.X)))
	a.measurementInfo.distanceYLabel.SetText(fmt.Sprintf("Distance Y: %.6f units", math.Abs(p2.Y-p1.Y)))
	a.measurementInfo.totalDistLabel.SetText(fmt.Sprintf("Total Distance: %.6f units", p1.Distance(p2)))
}
