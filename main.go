package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/itis-algos/chaintable/collections"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)

	table, err := collections.NewChainedTable[int, string](4, 0.75)
	if err != nil {
		log.Fatal(err)
	}

	table.Put(1, "a")
	table.Put(2, "b")
	table.Put(3, "c")
	log.Infof("size=%d capacity=%d", table.Size(), table.Capacity())
	table.Put(4, "d")
	log.Infof("size=%d capacity=%d", table.Size(), table.Capacity())

	if v, ok := table.Get(2); ok {
		log.Infof("get 2 -> %s", v)
	}
	if v, ok := table.Delete(3); ok {
		log.Infof("deleted 3 -> %s", v)
	}
	if _, ok := table.Get(3); !ok {
		log.Info("3 is gone")
	}

	log.Infof("keys=%v", table.Keys().Entries())
	log.Infof("values=%v", table.Values())
}
