// Package vigencia concentra a aritmética de datas dos contratos de locação:
// término de vigência, próximo reajuste e fim de parcelamentos por encargo.
package vigencia

import "time"

// CalcularDataFim retorna a data de término somando meses corridos à data de
// início. Dias que não existem no mês de destino transbordam conforme a regra
// de time.AddDate. Retorna zero se a data de início estiver vazia ou o período
// não for positivo.
func CalcularDataFim(inicio time.Time, meses int) time.Time {
	if inicio.IsZero() || meses <= 0 {
		return time.Time{}
	}
	return inicio.AddDate(0, meses, 0)
}

// CalcularProximoReajuste encontra o primeiro marco de reajuste estritamente
// posterior a hoje, partindo da data de início e avançando de periodoMeses em
// periodoMeses. Um marco que cai exatamente em hoje ainda não é futuro, então
// o laço continua. periodoMeses > 0 garante o término.
func CalcularProximoReajuste(inicio time.Time, periodoMeses int, hoje time.Time) time.Time {
	if inicio.IsZero() || periodoMeses <= 0 {
		return time.Time{}
	}
	proximo := inicio
	for !proximo.After(hoje) {
		proximo = proximo.AddDate(0, periodoMeses, 0)
	}
	return proximo
}

// CalcularDataFimParcelas retorna a data de término de um parcelamento mensal
// (seguro fiança, seguro incêndio, IPTU) a partir da data de início e da
// quantidade de parcelas. Mesma regra de soma de meses de CalcularDataFim.
func CalcularDataFimParcelas(inicio time.Time, parcelas int) time.Time {
	if inicio.IsZero() || parcelas <= 0 {
		return time.Time{}
	}
	return inicio.AddDate(0, parcelas, 0)
}
