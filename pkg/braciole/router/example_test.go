package router_test

import (
	"fmt"

	"github.com/syncly-app/braciole/pkg/braciole/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenFileList router.Screen = iota
	ScreenFileDetail
	ScreenSettings
)

// Action enums for each screen
type FileListAction int

const (
	FileListActionSelected FileListAction = iota
	FileListActionSettings
	FileListActionBack
)

type FileDetailAction int

const (
	FileDetailActionBack FileDetailAction = iota
	FileDetailActionDownload
)

// Domain types
type File struct {
	Name    string
	Buckets int
}

// Input types - what each screen needs to render
type FileListInput struct {
	Files  []File
	Resume *FileListResume
}

type FileDetailInput struct {
	File File
}

// Result types - what each screen returns
type FileListResult struct {
	Action   FileListAction
	Selected *File
	Resume   *FileListResume
}

type FileDetailResult struct {
	Action FileDetailAction
}

// Resume types - position state for back navigation
type FileListResume struct {
	SelectedIndex  int
	ScrollPosition int
}

// Example demonstrates basic router usage with screen registration and transitions.
func Example() {
	r := router.New()

	// Track calls to simulate a flow: list -> detail -> back -> exit
	listCalls := 0

	// Register screens
	r.Register(ScreenFileList, func(input any) (any, error) {
		in := input.(FileListInput)
		listCalls++

		if listCalls == 1 {
			// First call: open a file
			fmt.Println("List: opening file")
			return FileListResult{
				Action:   FileListActionSelected,
				Selected: &in.Files[0],
				Resume:   &FileListResume{SelectedIndex: 0},
			}, nil
		}
		// Second call: exit
		fmt.Printf("List: restored to index %d, exiting\n", in.Resume.SelectedIndex)
		return FileListResult{Action: FileListActionBack}, nil
	})

	r.Register(ScreenFileDetail, func(input any) (any, error) {
		in := input.(FileDetailInput)
		fmt.Printf("Detail: showing %s, going back\n", in.File.Name)
		return FileDetailResult{Action: FileDetailActionBack}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenFileList:
			res := result.(FileListResult)
			switch res.Action {
			case FileListActionSelected:
				// Forward: push current state, go to detail
				stack.Push(from, FileListInput{Files: []File{{Name: "report.pdf", Buckets: 3}}}, res.Resume)
				return ScreenFileDetail, FileDetailInput{File: *res.Selected}
			case FileListActionBack:
				return router.ScreenExit, nil
			}

		case ScreenFileDetail:
			res := result.(FileDetailResult)
			if res.Action == FileDetailActionBack {
				// Back: pop and restore
				if entry := stack.Pop(); entry != nil {
					in := entry.Input.(FileListInput)
					if entry.Resume != nil {
						in.Resume = entry.Resume.(*FileListResume)
					}
					return entry.Screen, in
				}
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	// Start the router
	files := []File{{Name: "report.pdf", Buckets: 3}}
	_ = r.Run(ScreenFileList, FileListInput{Files: files})

	// Output:
	// List: opening file
	// Detail: showing report.pdf, going back
	// List: restored to index 0, exiting
}

// Example_backNavigation demonstrates stack-based back navigation with resume state.
func Example_backNavigation() {
	r := router.New()

	visits := 0

	r.Register(ScreenFileList, func(input any) (any, error) {
		in := input.(FileListInput)
		visits++

		if visits == 1 {
			fmt.Println("First visit: opening file at index 2")
			return FileListResult{
				Action:   FileListActionSelected,
				Selected: &File{Name: "backup.tar", Buckets: 5},
				Resume:   &FileListResume{SelectedIndex: 2, ScrollPosition: 100},
			}, nil
		}

		// Returning from detail
		fmt.Printf("Returned: index=%d, scroll=%d\n",
			in.Resume.SelectedIndex, in.Resume.ScrollPosition)
		return FileListResult{Action: FileListActionBack}, nil
	})

	r.Register(ScreenFileDetail, func(input any) (any, error) {
		in := input.(FileDetailInput)
		fmt.Printf("Viewing: %s\n", in.File.Name)
		return FileDetailResult{Action: FileDetailActionBack}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenFileList:
			res := result.(FileListResult)
			if res.Action == FileListActionSelected {
				stack.Push(from, FileListInput{}, res.Resume)
				return ScreenFileDetail, FileDetailInput{File: *res.Selected}
			}
			return router.ScreenExit, nil

		case ScreenFileDetail:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(FileListInput)
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*FileListResume)
				}
				return entry.Screen, in
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenFileList, FileListInput{})

	// Output:
	// First visit: opening file at index 2
	// Viewing: backup.tar
	// Returned: index=2, scroll=100
}
