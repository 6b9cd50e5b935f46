package router

import (
	"sort"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

func sortByCenterX(entities []*model.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Position.CenterX() < entities[j].Position.CenterX()
	})
}

func maxRight(entities []*model.Entity) float64 {
	max := entities[0].Position.Right()
	for _, e := range entities[1:] {
		if r := e.Position.Right(); r > max {
			max = r
		}
	}
	return max
}

func minLeft(entities []*model.Entity) float64 {
	min := entities[0].Position.X
	for _, e := range entities[1:] {
		if x := e.Position.X; x < min {
			min = x
		}
	}
	return min
}

func maxBottom(entities []*model.Entity) float64 {
	max := entities[0].Position.Bottom()
	for _, e := range entities[1:] {
		if b := e.Position.Bottom(); b > max {
			max = b
		}
	}
	return max
}

func minTop(entities []*model.Entity) float64 {
	min := entities[0].Position.Top()
	for _, e := range entities[1:] {
		if t := e.Position.Top(); t < min {
			min = t
		}
	}
	return min
}
