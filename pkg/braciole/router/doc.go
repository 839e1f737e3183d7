// Package router provides screen navigation with explicit data flow.
//
// Each screen declares its own input and result types, and a single
// centralized transition function holds all routing logic. This keeps data
// flow traceable and avoids hidden global state between screens.
//
// # Basic Usage
//
//	// Define screen identifiers as typed constants
//	const (
//	    ScreenFileList Screen = iota
//	    ScreenFileDetail
//	)
//
//	// Define input/output types for each screen
//	type FileListInput struct {
//	    Files  []File
//	    Resume *FileListResume // nil if fresh, populated if returning
//	}
//
//	type FileListResult struct {
//	    Action   FileListAction
//	    Selected *File
//	    Resume   *FileListResume // position state for back navigation
//	}
//
//	// Create and configure router
//	r := router.New()
//
//	r.Register(ScreenFileList, func(input any) (any, error) {
//	    in := input.(FileListInput)
//	    return fileListScreen(in), nil
//	})
//
//	r.Register(ScreenFileDetail, func(input any) (any, error) {
//	    in := input.(FileDetailInput)
//	    return fileDetailScreen(in), nil
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenFileList:
//	        res := result.(FileListResult)
//	        switch res.Action {
//	        case FileListActionSelected:
//	            // Push current state for back navigation
//	            stack.Push(from, input, res.Resume)
//	            return ScreenFileDetail, FileDetailInput{File: res.Selected}
//	        case FileListActionBack:
//	            if stack.IsEmpty() {
//	                return router.ScreenExit, nil
//	            }
//	            entry := stack.Pop()
//	            // Restore with resume state
//	            in := entry.Input.(FileListInput)
//	            in.Resume = entry.Resume.(*FileListResume)
//	            return entry.Screen, in
//	        }
//	    case ScreenFileDetail:
//	        // ...
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.Run(ScreenFileList, FileListInput{Files: files})
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
//
// The Resume field should be nil for stateless screens (dialogs, confirmations).
package router
