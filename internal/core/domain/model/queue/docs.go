// Package queue holds the FIFO of paid orders waiting for a free solver.
package queue
