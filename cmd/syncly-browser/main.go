// Command syncly-browser browses a Syncly chunk-metadata catalog on a
// handheld device. It lists the files in the catalog, shows per-file chunk
// and bucket details, and offers a small settings screen.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/syncly-app/braciole/pkg/braciole"
	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/syncly-app/braciole/pkg/braciole/router"
	"go.uber.org/atomic"
)

const (
	screenFileList router.Screen = iota
	screenFileDetail
	screenSettings
	screenConfirmExit
)

type fileListInput struct {
	resume *fileListResume
}

type fileListResume struct {
	selectedIndex     int
	visibleStartIndex int
}

type fileListAction int

const (
	fileListActionOpened fileListAction = iota
	fileListActionSettings
	fileListActionBack
)

type fileListResult struct {
	action   fileListAction
	selected *CatalogFile
	resume   *fileListResume
}

type app struct {
	files      []CatalogFile
	descending bool
	showClock  *atomic.Bool
}

func main() {
	metadataPath := flag.String("metadata", "metadata.json", "path to the chunk-metadata catalog")
	nextUI := flag.Bool("nextui", false, "use NextUI theming and power handling")
	logPath := flag.String("log", "", "path to the log file")
	flag.Parse()

	files, err := LoadCatalog(*metadataPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	braciole.Init(braciole.Options{
		WindowTitle:    "Syncly",
		ShowBackground: true,
		IsNextUI:       *nextUI,
		LogPath:        *logPath,
	})
	defer braciole.Close()

	a := &app{
		files:     files,
		showClock: atomic.NewBool(true),
	}

	logger := braciole.GetLogger()
	logger.Info("Catalog loaded", "files", len(files), "buckets", BucketCount(files))

	if err := a.run(); err != nil {
		logger.Error("Browser exited with error", "error", err)
		os.Exit(1)
	}
}

func (a *app) run() error {
	r := router.New()

	r.Register(screenFileList, func(input any) (any, error) {
		in, _ := input.(fileListInput)
		return a.fileListScreen(in)
	})

	r.Register(screenFileDetail, func(input any) (any, error) {
		file := input.(CatalogFile)
		return a.fileDetailScreen(file)
	})

	r.Register(screenSettings, func(input any) (any, error) {
		return a.settingsScreen()
	})

	r.Register(screenConfirmExit, func(input any) (any, error) {
		return a.confirmExitScreen()
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case screenFileList:
			res := result.(fileListResult)
			switch res.action {
			case fileListActionOpened:
				stack.Push(from, fileListInput{}, res.resume)
				return screenFileDetail, *res.selected
			case fileListActionSettings:
				stack.Push(from, fileListInput{}, res.resume)
				return screenSettings, nil
			case fileListActionBack:
				return screenConfirmExit, nil
			}

		case screenFileDetail, screenSettings:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(fileListInput)
				if entry.Resume != nil {
					in.resume = entry.Resume.(*fileListResume)
				}
				return entry.Screen, in
			}
			return router.ScreenExit, nil

		case screenConfirmExit:
			if result.(bool) {
				return router.ScreenExit, nil
			}
			return screenFileList, fileListInput{}
		}
		return router.ScreenExit, nil
	})

	return r.Run(screenFileList, fileListInput{})
}

func (a *app) fileListScreen(in fileListInput) (fileListResult, error) {
	logger := braciole.GetLogger()

	items := make([]braciole.MenuItem, len(a.files))
	for i, file := range a.files {
		items[i] = braciole.MenuItem{
			Text:     file.FileName,
			Metadata: file,
		}
	}

	options := braciole.DefaultListOptions("Syncly", items)
	options.ActionButton = constants.VirtualButtonX
	options.FooterHelpItems = []braciole.FooterHelpItem{
		{ButtonName: "B", HelpText: "Exit"},
		{ButtonName: "X", HelpText: "Settings"},
		{ButtonName: "A", HelpText: "Open"},
	}
	options.StatusBar = braciole.StatusBarOptions{
		Enabled:   true,
		Text:      fmt.Sprintf("%d buckets", BucketCount(a.files)),
		Icon:      constants.CloudCheck,
		ShowClock: a.showClock.Load(),
	}
	options.OnSelect = func(index int, item *braciole.MenuItem) {
		logger.Debug("File focused", "index", index, "file", item.Text)
	}

	if in.resume != nil {
		options.SelectedIndex = in.resume.selectedIndex
		options.VisibleStartIndex = in.resume.visibleStartIndex
	}

	result, err := braciole.List(options)
	if err != nil {
		if braciole.IsCancelled(err) {
			return fileListResult{action: fileListActionBack}, nil
		}
		return fileListResult{}, err
	}

	resume := &fileListResume{}
	if len(result.Selected) > 0 {
		resume.selectedIndex = result.Selected[0]
		resume.visibleStartIndex = result.Selected[0] - result.VisiblePosition
	}

	switch result.Action {
	case braciole.ListActionTriggered:
		return fileListResult{action: fileListActionSettings, resume: resume}, nil
	case braciole.ListActionSelected, braciole.ListActionConfirmed:
		if len(result.Selected) == 0 {
			return fileListResult{action: fileListActionBack}, nil
		}
		file := result.Items[result.Selected[0]].Metadata.(CatalogFile)
		return fileListResult{action: fileListActionOpened, selected: &file, resume: resume}, nil
	}
	return fileListResult{action: fileListActionBack}, nil
}

func (a *app) fileDetailScreen(file CatalogFile) (any, error) {
	buckets := file.Buckets()

	metadata := []braciole.MetadataItem{
		{Label: "Name", Value: file.FileName},
		{Label: "Parts", Value: fmt.Sprintf("%d", len(file.Chunks))},
		{Label: "Buckets", Value: fmt.Sprintf("%d", len(buckets))},
	}
	for _, bucket := range buckets {
		metadata = append(metadata, braciole.MetadataItem{Label: "Bucket", Value: bucket})
	}

	description := ""
	for _, chunk := range file.Chunks {
		description += chunk.ChunkName + "\n" + chunk.ViewLink() + "\n\n"
	}

	options := braciole.DefaultDetailScreenOptions([]braciole.Section{
		braciole.NewInfoSection("Storage", metadata),
		braciole.NewDescriptionSection("Parts", description),
	})
	options.StatusBar = braciole.StatusBarOptions{
		Enabled: true,
		Icon:    constants.CloudDownload,
		Text:    fmt.Sprintf("%d parts", len(file.Chunks)),
	}

	footer := []braciole.FooterHelpItem{{ButtonName: "B", HelpText: "Back"}}

	_, err := braciole.DetailScreen(file.FileName, options, footer)
	if err != nil && !braciole.IsCancelled(err) {
		return nil, err
	}
	return nil, nil
}

func (a *app) settingsScreen() (any, error) {
	clockFormatVisible := atomic.NewBool(a.showClock.Load())

	rows := []braciole.ItemWithOptions{
		{
			Item: braciole.MenuItem{Text: "Sort order"},
			Options: []braciole.Option{
				{DisplayName: "A to Z", Value: "asc", OnUpdate: func(any) { a.resort(false) }},
				{DisplayName: "Z to A", Value: "desc", OnUpdate: func(any) { a.resort(true) }},
			},
			SelectedOption: boolIndex(a.descending),
		},
		{
			Item: braciole.MenuItem{Text: "Status bar clock"},
			Options: []braciole.Option{
				{DisplayName: "On", Value: "on", OnUpdate: func(any) {
					a.showClock.Store(true)
					clockFormatVisible.Store(true)
				}},
				{DisplayName: "Off", Value: "off", OnUpdate: func(any) {
					a.showClock.Store(false)
					clockFormatVisible.Store(false)
				}},
			},
			SelectedOption: boolIndex(!a.showClock.Load()),
		},
		{
			Item: braciole.MenuItem{Text: "Clock format"},
			Options: []braciole.Option{
				{DisplayName: "24-hour", Value: "24h"},
				{DisplayName: "12-hour", Value: "12h"},
			},
			VisibleWhen: clockFormatVisible,
		},
	}

	settings := braciole.OptionListSettings{
		UseSmallTitle: true,
		FooterHelpItems: []braciole.FooterHelpItem{
			{ButtonName: "B", HelpText: "Back"},
			{ButtonName: "Y", HelpText: "Pick"},
		},
		ListPickerButton: constants.VirtualButtonY,
	}

	_, err := braciole.OptionsList("Settings", rows, settings)
	if err != nil && !braciole.IsCancelled(err) {
		return nil, err
	}
	return nil, nil
}

func (a *app) confirmExitScreen() (bool, error) {
	result, err := braciole.SelectionMessage(
		"Exit Syncly?",
		[]braciole.SelectionOption{
			{DisplayName: "Stay", Value: false},
			{DisplayName: "Exit", Value: true},
		},
		nil,
		braciole.SelectionMessageSettings{},
	)
	if err != nil {
		if braciole.IsCancelled(err) {
			return false, nil
		}
		return false, err
	}
	return result.SelectedValue.(bool), nil
}

func (a *app) resort(descending bool) {
	a.descending = descending
	SortFiles(a.files, descending)
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
