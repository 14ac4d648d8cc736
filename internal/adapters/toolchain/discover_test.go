package toolchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
	"github.com/caxe-dev/cx/internal/core/ports/mocks"
)

func TestPathDiscoverer_DedupesByFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ports.ExecResult{
		ExitCode: 0,
		Stdout:   "clang version 17.0.6\nTarget: x86_64\n",
	}, nil).AnyTimes()

	// clang++ and clang both resolve, but only one clang candidate comes back.
	d := &pathDiscoverer{
		executor: executor,
		lookPath: func(binary string) (string, error) {
			switch binary {
			case "clang++", "clang":
				return "/usr/bin/" + binary, nil
			default:
				return "", errors.New("not found")
			}
		},
	}

	found, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.Clang, found[0].Type)
	assert.Equal(t, "/usr/bin/clang++", found[0].Path)
	assert.Equal(t, "clang version 17.0.6", found[0].Version)
}

func TestPathDiscoverer_PreferenceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ports.ExecResult{ExitCode: 0}, nil).AnyTimes()

	d := &pathDiscoverer{
		executor: executor,
		lookPath: func(binary string) (string, error) {
			return "/usr/bin/" + binary, nil
		},
	}

	found, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, domain.Clang, found[0].Type)
	assert.Equal(t, domain.GCC, found[1].Type)
}

func TestPathDiscoverer_VersionProbeFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(ports.ExecResult{}, errors.New("exec format error")).AnyTimes()

	d := &pathDiscoverer{
		executor: executor,
		lookPath: func(binary string) (string, error) {
			if binary == "g++" {
				return "/usr/bin/g++", nil
			}
			return "", errors.New("not found")
		},
	}

	found, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Empty(t, found[0].Version)
}
