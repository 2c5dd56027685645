// Package process tracks the PID of a running gitmsg server.
package process

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/gops/goprocess"
)

type Process struct {
	procList []Process

	PID  int
	Exec string
	Path string
}

func NewProcess() *Process {
	return &Process{}
}

// ListProcesses snapshots the Go processes visible to gops.
func (p *Process) ListProcesses() error {
	p.procList = p.procList[:0]

	for _, proc := range goprocess.FindAll() {
		p.procList = append(p.procList, Process{
			PID:  proc.PID,
			Exec: proc.Exec,
			Path: proc.Path,
		})
	}

	return nil
}

func (p *Process) IsProcessRunning(pid int) bool {
	for _, proc := range p.procList {
		if proc.PID == pid {
			return true
		}
	}

	return false
}

// ProcessExists reports whether pid is running and its executable matches name.
func (p *Process) ProcessExists(pid int, name string) bool {
	for _, proc := range p.procList {
		if proc.PID == pid {
			return strings.Contains(strings.ToLower(proc.Exec), name) || strings.Contains(strings.ToLower(proc.Path), name)
		}
	}

	return false
}

// WritePIDFile records the current PID at path.
func WritePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating pid directory: %w", err)
	}

	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600)
}

// ReadPIDFile returns the PID stored at path, or 0 when there is none.
func ReadPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid pid file %s: %w", path, err)
	}

	return pid, nil
}

// RunningServer returns the PID of a live server recorded at path, or 0.
// A stale file left by a dead process is removed.
func RunningServer(path, name string) (int, error) {
	pid, err := ReadPIDFile(path)
	if err != nil || pid == 0 {
		return 0, err
	}

	p := NewProcess()
	if err := p.ListProcesses(); err != nil {
		return 0, err
	}

	if p.ProcessExists(pid, name) {
		return pid, nil
	}

	_ = os.Remove(path)

	return 0, nil
}
