// Package sysinfo reports basic host metrics for the admin system page.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
)

type Info struct {
	UsedCPUPercent  float64 `json:"used_cpu_percent"`
	UsedDiskPercent float64 `json:"used_disk_percent"`
	FreeDiskBytes   uint64  `json:"free_disk_bytes"`
}

type Collector interface {
	Collect(ctx context.Context) (Info, error)
}

// HostCollector samples the local machine. DiskPath defaults to "/".
type HostCollector struct {
	DiskPath string
}

func (c HostCollector) Collect(ctx context.Context) (Info, error) {
	path := c.DiskPath
	if path == "" {
		path = "/"
	}

	percents, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false)
	if err != nil {
		return Info{}, fmt.Errorf("sample cpu: %w", err)
	}
	var cpuPercent float64
	if len(percents) > 0 {
		cpuPercent = percents[0]
	}

	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return Info{}, fmt.Errorf("sample disk: %w", err)
	}

	return Info{
		UsedCPUPercent:  cpuPercent,
		UsedDiskPercent: usage.UsedPercent,
		FreeDiskBytes:   usage.Free,
	}, nil
}
