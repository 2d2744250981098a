package logic

import (
	"bufio"
	"os"
	"strings"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_accounts.go -package mocks tweet_pilot/logic IBlockedAccounts

// IBlockedAccounts is the operator-maintained never-engage list, independent
// of any strategy's own avoid list.
type IBlockedAccounts interface {
	IsBlocked(handle string) (bool, error)
}

type blockedAccounts struct {
	cfg *shared.Config
}

func NewBlockedAccounts(cfg *shared.Config) IBlockedAccounts {
	return &blockedAccounts{cfg}
}

func (ba *blockedAccounts) IsBlocked(handle string) (bool, error) {

	if ba.cfg.BlockedAccountsFile == "" {
		return false, nil
	}
	handle = strings.ToLower(handle)
	handle = strings.TrimPrefix(handle, "@")
	readFile, err := os.Open(ba.cfg.BlockedAccountsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(fileScanner.Text()))
		line = strings.TrimPrefix(line, "@")
		if handle == line && line != "" {
			return true, nil
		}
	}
	return false, nil
}
