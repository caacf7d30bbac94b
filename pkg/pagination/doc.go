// Package pagination computes the sliding window of page links rendered by the
// Bootstrap pagination component and prepares the base URL those links append
// their page number to.
//
// The window retracts by one slot when it reaches the last page:
//
//	win, err := pagination.Calculate(20, 20, 11)
//	// win.FirstPage == 15, win.LastPage == 20, *win.PagesBack == 11
package pagination
