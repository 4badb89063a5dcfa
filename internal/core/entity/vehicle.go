package entity

import "github.com/zeusync/actorproxy/internal/core/native"

// Vehicle is a proxy for a vehicle. Only the queries peds need are exposed.
type Vehicle struct {
	base
}

// NewVehicle wraps h. It makes no calls.
func NewVehicle(rt *Runtime, h Handle) *Vehicle {
	return &Vehicle{base: base{rt: rt, handle: h}}
}

func (v *Vehicle) Type() EntityType { return EntityTypeVehicle }

func (v *Vehicle) IsSeatFree(seat VehicleSeat) bool {
	return v.call(native.IsVehicleSeatFree, v.self(), native.Int(int(seat))).AsBool()
}

// PedOnSeat is nil when the seat is empty.
func (v *Vehicle) PedOnSeat(seat VehicleSeat) *Ped {
	h := v.call(native.GetPedInVehicleSeat, v.self(), native.Int(int(seat))).AsInt32()
	if h == 0 {
		return nil
	}
	return NewPed(v.rt, Handle(h))
}

func (v *Vehicle) Driver() *Ped { return v.PedOnSeat(SeatDriver) }

// PassengerCount excludes the driver.
func (v *Vehicle) PassengerCount() int {
	return v.call(native.GetVehicleNumberOfPassengers, v.self()).AsInt()
}
